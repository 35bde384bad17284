package parser

import (
	"hotkeyc/internal/engine/keysym"
	"strings"
)

// KeyBinding is one key press: a keysym, the modifiers held with it and the
// prefix flags. Modifiers compare as a set.
type KeyBinding struct {
	Keysym    keysym.Key
	Modifiers []keysym.Modifier
	OnRelease bool // "@" prefix: fire when the key is released
	Send      bool // "~" prefix: pass the key press through
}

// NewKeyBinding drops repeated modifiers, keeping first-seen order.
func NewKeyBinding(key keysym.Key, modifiers ...keysym.Modifier) KeyBinding {
	var mods []keysym.Modifier
	for _, m := range modifiers {
		if !hasModifier(mods, m) {
			mods = append(mods, m)
		}
	}
	return KeyBinding{Keysym: key, Modifiers: mods}
}

// Equal compares structurally, treating modifiers as a set.
func (k KeyBinding) Equal(other KeyBinding) bool {
	if k.Keysym != other.Keysym || k.OnRelease != other.OnRelease || k.Send != other.Send {
		return false
	}
	return sameModifiers(k.Modifiers, other.Modifiers)
}

func sameModifiers(a, b []keysym.Modifier) bool {
	for _, m := range a {
		if !hasModifier(b, m) {
			return false
		}
	}
	for _, m := range b {
		if !hasModifier(a, m) {
			return false
		}
	}
	return true
}

func (k KeyBinding) String() string {
	var b strings.Builder
	for _, m := range k.Modifiers {
		b.WriteString(strings.ToLower(m.String()))
		b.WriteString(" + ")
	}
	if k.Send {
		b.WriteByte('~')
	}
	if k.OnRelease {
		b.WriteByte('@')
	}
	b.WriteString(strings.ToLower(k.Keysym.Short()))
	return b.String()
}

func hasModifier(mods []keysym.Modifier, m keysym.Modifier) bool {
	for _, candidate := range mods {
		if candidate == m {
			return true
		}
	}
	return false
}

// Output is one compiled unit: either a Hotkey or a KeyChord.
type Output interface {
	isOutput()
	Equal(Output) bool
}

// Hotkey binds a single key press to a command.
type Hotkey struct {
	Binding KeyBinding
	Command string
}

func (Hotkey) isOutput() {}

func (h Hotkey) Equal(other Output) bool {
	o, ok := other.(Hotkey)
	return ok && h.Command == o.Command && h.Binding.Equal(o.Binding)
}

// KeyChord binds an entry key followed by one of several key sequences.
// Sequences[i] runs Commands[i].
type KeyChord struct {
	Entry     KeyBinding
	Sequences [][]KeyBinding
	Commands  []string
}

func (KeyChord) isOutput() {}

func (c KeyChord) Equal(other Output) bool {
	o, ok := other.(KeyChord)
	if !ok || !c.Entry.Equal(o.Entry) {
		return false
	}
	if len(c.Sequences) != len(o.Sequences) || len(c.Commands) != len(o.Commands) {
		return false
	}
	for i := range c.Commands {
		if c.Commands[i] != o.Commands[i] {
			return false
		}
	}
	for i, seq := range c.Sequences {
		if len(seq) != len(o.Sequences[i]) {
			return false
		}
		for j, kb := range seq {
			if !kb.Equal(o.Sequences[i][j]) {
				return false
			}
		}
	}
	return true
}
