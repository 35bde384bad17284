package parser

import (
	"hotkeyc/internal/core/errors"
	"hotkeyc/internal/engine/expand"
	"strings"
)

// Assembler turns a (key line, command line) pair into hotkeys and chords.
type Assembler struct {
	grammar *Grammar
}

func NewAssembler(grammar *Grammar) *Assembler {
	if grammar == nil {
		grammar = NewGrammar(nil)
	}
	return &Assembler{grammar: grammar}
}

// commandQueue hands out expanded commands strictly in order.
type commandQueue struct {
	items []string
	next  int
}

func (q *commandQueue) take() (string, bool) {
	if q.next >= len(q.items) {
		return "", false
	}
	cmd := q.items[q.next]
	q.next++
	return cmd, true
}

// AssembleLine compiles one pair. A key line without ";" yields one Hotkey
// per expanded key expression, paired positionally with the expanded
// commands. With ";" the first segment is the chord entry and the remaining
// segments expand to a shared list of sequences; each entry variant takes
// the next len(sequences) commands. Any failure discards the whole pair.
func (a *Assembler) AssembleLine(keyLine, commandLine Line, path string) ([]Output, error) {
	segments := strings.Split(keyLine.Content, ";")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	commands := &commandQueue{items: expand.Expand(commandLine.Content)}

	if len(segments) == 1 {
		return a.assembleHotkeys(segments[0], commands, keyLine.Number, path)
	}
	return a.assembleChords(segments[0], segments[1:], commands, keyLine.Number, path)
}

func (a *Assembler) assembleHotkeys(segment string, commands *commandQueue, line int, path string) ([]Output, error) {
	exprs := expand.Expand(segment)
	out := make([]Output, 0, len(exprs))
	for _, expr := range exprs {
		kb, err := a.grammar.ParseBinding(expr, path, line)
		if err != nil {
			return nil, err
		}
		cmd, ok := commands.take()
		if !ok {
			return nil, errors.InvalidConfig(errors.MissingCommand, path, line, expr)
		}
		out = append(out, Hotkey{Binding: kb, Command: cmd})
	}
	return out, nil
}

func (a *Assembler) assembleChords(entrySegment string, rest []string, commands *commandQueue, line int, path string) ([]Output, error) {
	expanded := make([][]string, 0, len(rest))
	for _, segment := range rest {
		expanded = append(expanded, expand.Expand(segment))
	}

	var sequences [][]KeyBinding
	for _, tuple := range expand.Product(expanded) {
		seq := make([]KeyBinding, 0, len(tuple))
		for _, expr := range tuple {
			kb, err := a.grammar.ParseBinding(expr, path, line)
			if err != nil {
				return nil, err
			}
			seq = append(seq, kb)
		}
		sequences = append(sequences, seq)
	}

	entries := expand.Expand(entrySegment)
	out := make([]Output, 0, len(entries))
	for _, expr := range entries {
		entry, err := a.grammar.ParseBinding(expr, path, line)
		if err != nil {
			return nil, err
		}
		cmds := make([]string, 0, len(sequences))
		for range sequences {
			cmd, ok := commands.take()
			if !ok {
				return nil, errors.InvalidConfig(errors.MissingCommand, path, line, expr)
			}
			cmds = append(cmds, cmd)
		}
		// sequences are shared between entry variants and never mutated
		out = append(out, KeyChord{Entry: entry, Sequences: sequences, Commands: cmds})
	}
	return out, nil
}
