package parser

import "strings"

// Pair is a key line together with the command line that follows it.
type Pair struct {
	Key     Line
	Command Line
}

// PairLines walks joined logical lines and pairs each key line with the
// command line immediately after it. Import directives are skipped. Key
// lines without a command and stray command lines come back as orphans.
func PairLines(lines []Line, importKeyword string) (pairs []Pair, orphans []Line) {
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line.Kind == KindKey && isImport(line.Content, importKeyword) {
			continue
		}
		if line.Kind != KindKey {
			orphans = append(orphans, line)
			continue
		}
		if i+1 >= len(lines) || lines[i+1].Kind != KindCommand {
			orphans = append(orphans, line)
			continue
		}
		pairs = append(pairs, Pair{Key: line, Command: lines[i+1]})
		i++
	}
	return pairs, orphans
}

func isImport(content, keyword string) bool {
	if keyword == "" {
		return false
	}
	first, _, _ := strings.Cut(content, " ")
	return first == keyword
}
