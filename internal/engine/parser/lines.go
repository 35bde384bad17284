package parser

import "strings"

const CommentSymbol = '#'

type LineKind int

const (
	KindOther LineKind = iota
	KindKey
	KindCommand
)

func (k LineKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindCommand:
		return "command"
	default:
		return "other"
	}
}

// Line is one logical line of a config file. Number is 1-based and refers
// to the first physical line of a joined continuation.
type Line struct {
	Content string
	Kind    LineKind
	Number  int
}

// Classify marks a raw physical line. Blank lines and comments are
// KindOther, lines indented with a space or tab are commands.
func Classify(raw string) LineKind {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed[0] == CommentSymbol {
		return KindOther
	}
	if strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t") {
		return KindCommand
	}
	return KindKey
}

// SplitLines classifies every physical line of contents and drops comments
// and blank lines.
func SplitLines(contents string) []Line {
	var lines []Line
	for i, raw := range splitPhysical(contents) {
		kind := Classify(raw)
		if kind == KindOther {
			continue
		}
		lines = append(lines, Line{Content: raw, Kind: kind, Number: i + 1})
	}
	return lines
}

// splitPhysical splits on "\n", tolerating "\r\n" and a missing final newline.
func splitPhysical(contents string) []string {
	if contents == "" {
		return nil
	}
	raw := strings.Split(contents, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}

// Discard records a continuation line whose content was dropped because its
// kind differed from the line it continued.
type Discard struct {
	Pending Line
	Dropped Line
}

// JoinLines trims every line and merges backslash continuations. A pending
// line ending in "\" absorbs the next line when both have the same kind;
// otherwise the backslash is stripped and the next line's content is lost.
// Those losses are returned so callers can report them.
func JoinLines(lines []Line) ([]Line, []Discard) {
	if len(lines) == 0 {
		return nil, nil
	}

	var joined []Line
	var discards []Discard
	pending := trimLine(lines[0])
	for _, next := range lines[1:] {
		next = trimLine(next)
		if !pending.continues() {
			joined = append(joined, pending)
			pending = next
			continue
		}
		if pending.Kind != next.Kind {
			discards = append(discards, Discard{Pending: pending, Dropped: next})
		}
		pending = pending.join(next)
	}
	joined = append(joined, pending)
	return joined, discards
}

func trimLine(l Line) Line {
	l.Content = strings.TrimSpace(l.Content)
	return l
}

func (l Line) continues() bool {
	return strings.HasSuffix(l.Content, `\`)
}

func (l Line) join(next Line) Line {
	head := strings.TrimSuffix(l.Content, `\`)
	if l.Kind == next.Kind {
		head += next.Content
	}
	return Line{Content: head, Kind: l.Kind, Number: l.Number}
}
