package app

import (
	"fmt"
	"hotkeyc/internal/engine/graph"
	"hotkeyc/internal/engine/parser"
	"hotkeyc/internal/shared/util"
	"path/filepath"
	"strings"
)

// Entry is one compiled output with the file and key line it came from.
type Entry struct {
	Path   string
	Line   int
	Output parser.Output
}

// Table is the result of one compile. Entries follow unit order, then
// line order within a unit.
type Table struct {
	ID      string
	Root    string
	Units   []string
	Entries []Entry
	Cycles  [][]string

	graph *graph.Graph
}

func (t *Table) Outputs() []parser.Output {
	out := make([]parser.Output, 0, len(t.Entries))
	for _, e := range t.Entries {
		out = append(out, e.Output)
	}
	return out
}

func (t *Table) Hotkeys() []parser.Hotkey {
	var out []parser.Hotkey
	for _, e := range t.Entries {
		if h, ok := e.Output.(parser.Hotkey); ok {
			out = append(out, h)
		}
	}
	return out
}

func (t *Table) Chords() []parser.KeyChord {
	var out []parser.KeyChord
	for _, e := range t.Entries {
		if c, ok := e.Output.(parser.KeyChord); ok {
			out = append(out, c)
		}
	}
	return out
}

// IncludeChain returns the include path leading from one file to another.
// Both paths are normalised the way the compile root is.
func (t *Table) IncludeChain(from, to string) ([]string, bool) {
	if t.graph == nil {
		return nil, false
	}
	return t.graph.FindIncludeChain(graphKey(from), graphKey(to))
}

func graphKey(path string) string {
	return filepath.Clean(util.ExpandHome(strings.TrimSpace(path)))
}

const (
	KindHotkey = "hotkey"
	KindChord  = "chord"
)

func OutputKind(o parser.Output) string {
	switch o.(type) {
	case parser.Hotkey:
		return KindHotkey
	case parser.KeyChord:
		return KindChord
	default:
		panic(fmt.Sprintf("unknown output type %T", o))
	}
}

// dedupe drops every output equal to an earlier one.
func dedupe(entries []Entry) ([]Entry, int) {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		dup := false
		for _, k := range kept {
			if k.Output.Equal(e.Output) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, e)
		}
	}
	return kept, len(entries) - len(kept)
}
