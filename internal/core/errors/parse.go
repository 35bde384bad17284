package errors

import (
	"errors"
	"fmt"
)

// ParseErrorKind names the way a key line failed to compile.
type ParseErrorKind int

const (
	UnknownSymbol ParseErrorKind = iota + 1
	InvalidModifier
	InvalidKeysym
	MissingCommand
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnknownSymbol:
		return "unknown symbol"
	case InvalidModifier:
		return "invalid modifier"
	case InvalidKeysym:
		return "invalid keysym"
	case MissingCommand:
		return "missing command"
	default:
		return "unknown parse error"
	}
}

// ParseError locates a grammar failure at the 1-based line of the key line.
type ParseError struct {
	Kind  ParseErrorKind
	Path  string
	Line  int
	Token string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s at %s:%d (%q)", e.Kind, e.Path, e.Line, e.Token)
	}
	return fmt.Sprintf("%s at %s:%d", e.Kind, e.Path, e.Line)
}

// InvalidConfig builds the INVALID_CONFIG domain error for a grammar failure.
func InvalidConfig(kind ParseErrorKind, path string, line int, token string) error {
	de := &DomainError{
		Code:    CodeInvalidConfig,
		Message: "error parsing config file",
		Err:     &ParseError{Kind: kind, Path: path, Line: line, Token: token},
	}
	return de.WithContext(CtxPath, path).WithContext(CtxLine, line)
}

// AsParseError extracts the ParseError carried by err, if any.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsParseKind reports whether err carries a ParseError of the given kind.
func IsParseKind(err error, kind ParseErrorKind) bool {
	pe, ok := AsParseError(err)
	return ok && pe.Kind == kind
}
