package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

type ErrorCode string

const (
	CodeConfigNotFound  ErrorCode = "CONFIG_NOT_FOUND"
	CodeIO              ErrorCode = "IO_ERROR"
	CodeInvalidConfig   ErrorCode = "INVALID_CONFIG"
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
)

type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

const (
	CtxPath      = "path"
	CtxLine      = "line"
	CtxOperation = "operation"
	CtxInclude   = "include"
)

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg}
}

func Wrap(err error, code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg, Err: err}
}

// AddContext attaches a key/value pair to err, wrapping it as an internal
// error when it is not already a DomainError.
func AddContext(err error, key string, value interface{}) error {
	var de *DomainError
	if errors.As(err, &de) {
		de.WithContext(key, value)
		return de
	}
	return &DomainError{
		Code:    CodeInternal,
		Message: "wrapped error",
		Err:     err,
		Context: map[string]interface{}{key: value},
	}
}

func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// FromRead classifies a failed file read: a missing file becomes
// CONFIG_NOT_FOUND, anything else IO_ERROR.
func FromRead(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		de := &DomainError{Code: CodeConfigNotFound, Message: "config file not found", Err: err}
		return de.WithContext(CtxPath, path)
	}
	de := &DomainError{Code: CodeIO, Message: "i/o error while reading config file", Err: err}
	return de.WithContext(CtxPath, path)
}

// CodeOf returns the code of the first DomainError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}
