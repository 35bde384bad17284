// Package expand implements shell-style curly brace templating.
//
// A line such as "super + {shift+,ctrl+}{1-3}" expands into every literal
// variant of the line. Groups hold comma separated items, an item may be an
// inclusive single character range ("a-d"), and "\," escapes a literal comma.
// Several groups combine as a cartesian product with the leftmost group
// varying slowest, so callers can align two expansions position by position.
//
// Malformed templates (nested or unmatched braces) are not an error: the
// line is returned unchanged and later stages decide what to make of it.
package expand

import "strings"

// escapedComma stands in for "\," while a group is split on commas. A
// control character cannot collide with anything a config author types.
const escapedComma = "\x00"

// Expand returns every variant of line in product order. The result is
// never empty; a line without a well formed template yields []string{line}.
func Expand(line string) []string {
	if !strings.Contains(line, "{") || !strings.Contains(line, "}") || !isASCII(line) {
		return []string{line}
	}

	positions, ok := bracePositions(line)
	if !ok {
		return []string{line}
	}

	// fixed[i] precedes groups[i]; tail follows the last group.
	fixed := make([]string, 0, len(positions)/2)
	groups := make([][]string, 0, len(positions)/2)
	start := 0
	for i := 0; i < len(positions); i += 2 {
		open, shut := positions[i], positions[i+1]
		fixed = append(fixed, line[start:open])
		groups = append(groups, expandRanges(splitGroup(line[open+1:shut])))
		start = shut + 1
	}
	tail := line[start:]

	combos := Product(groups)
	out := make([]string, 0, len(combos))
	for _, combo := range combos {
		var b strings.Builder
		for i, token := range combo {
			b.WriteString(fixed[i])
			b.WriteString(token)
		}
		b.WriteString(tail)
		out = append(out, b.String())
	}
	return out
}

// bracePositions records the byte offsets of every brace. It fails on a
// nested "{", a "}" with no open group, or a group left open at the end.
func bracePositions(line string) ([]int, bool) {
	var positions []int
	inside := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			if inside {
				return nil, false
			}
			positions = append(positions, i)
			inside = true
		case '}':
			if !inside {
				return nil, false
			}
			positions = append(positions, i)
			inside = false
		}
	}
	if inside {
		return nil, false
	}
	return positions, true
}

func splitGroup(inner string) []string {
	inner = strings.ReplaceAll(inner, `\,`, escapedComma)
	parts := strings.Split(inner, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.ReplaceAll(strings.TrimSpace(p), escapedComma, ","))
	}
	return tokens
}

// expandRanges replaces every well formed "x-y" token by the characters
// x through y. Anything else is kept as a single literal token.
func expandRanges(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		begin, end, ok := parseRange(token)
		if !ok {
			out = append(out, token)
			continue
		}
		for c := begin; c <= end; c++ {
			out = append(out, string(rune(c)))
		}
	}
	return out
}

func parseRange(token string) (byte, byte, bool) {
	if strings.Count(token, "-") != 1 {
		return 0, 0, false
	}
	bounds := strings.Split(token, "-")
	begin := strings.TrimSpace(bounds[0])
	end := strings.TrimSpace(bounds[1])
	if len(begin) != 1 || len(end) != 1 || begin[0] > end[0] {
		return 0, 0, false
	}
	return begin[0], end[0], true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
