package formats

import (
	"fmt"
	"hotkeyc/internal/core/app"
	"hotkeyc/internal/engine/parser"
)

// Document is the serialisable form of a binding table.
type Document struct {
	ID      string     `json:"compile_id" yaml:"compile_id"`
	Root    string     `json:"root" yaml:"root"`
	Units   []string   `json:"units" yaml:"units"`
	Entries []Row      `json:"entries" yaml:"entries"`
	Cycles  [][]string `json:"include_cycles,omitempty" yaml:"include_cycles,omitempty"`
}

// Row is one compiled output. Hotkeys fill Command; chords fill Chords.
type Row struct {
	Kind      string     `json:"kind" yaml:"kind"`
	Path      string     `json:"path" yaml:"path"`
	Line      int        `json:"line" yaml:"line"`
	Binding   string     `json:"binding" yaml:"binding"`
	Keysym    string     `json:"keysym" yaml:"keysym"`
	OnRelease bool       `json:"on_release,omitempty" yaml:"on_release,omitempty"`
	Send      bool       `json:"send,omitempty" yaml:"send,omitempty"`
	Command   string     `json:"command,omitempty" yaml:"command,omitempty"`
	Chords    []ChordRow `json:"chords,omitempty" yaml:"chords,omitempty"`
}

type ChordRow struct {
	Sequence []string `json:"sequence" yaml:"sequence"`
	Command  string   `json:"command" yaml:"command"`
}

func NewDocument(t *app.Table) Document {
	doc := Document{
		ID:      t.ID,
		Root:    t.Root,
		Units:   t.Units,
		Entries: make([]Row, 0, len(t.Entries)),
		Cycles:  t.Cycles,
	}
	for _, e := range t.Entries {
		doc.Entries = append(doc.Entries, newRow(e))
	}
	return doc
}

func newRow(e app.Entry) Row {
	switch out := e.Output.(type) {
	case parser.Hotkey:
		return Row{
			Kind:      app.KindHotkey,
			Path:      e.Path,
			Line:      e.Line,
			Binding:   out.Binding.String(),
			Keysym:    out.Binding.Keysym.String(),
			OnRelease: out.Binding.OnRelease,
			Send:      out.Binding.Send,
			Command:   out.Command,
		}
	case parser.KeyChord:
		row := Row{
			Kind:      app.KindChord,
			Path:      e.Path,
			Line:      e.Line,
			Binding:   out.Entry.String(),
			Keysym:    out.Entry.Keysym.String(),
			OnRelease: out.Entry.OnRelease,
			Send:      out.Entry.Send,
		}
		for i, seq := range out.Sequences {
			row.Chords = append(row.Chords, ChordRow{Sequence: bindingNames(seq), Command: out.Commands[i]})
		}
		return row
	default:
		panic(fmt.Sprintf("unknown output type %T", e.Output))
	}
}

func bindingNames(seq []parser.KeyBinding) []string {
	names := make([]string, 0, len(seq))
	for _, kb := range seq {
		names = append(names, kb.String())
	}
	return names
}
