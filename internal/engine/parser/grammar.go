package parser

import (
	"hotkeyc/internal/core/errors"
	"hotkeyc/internal/engine/keysym"
	"strings"
)

// Grammar parses key expressions of the form
// "[modifier +]* [@|~]* keysym" against a symbol table.
type Grammar struct {
	symbols keysym.Resolver
}

func NewGrammar(symbols keysym.Resolver) *Grammar {
	if symbols == nil {
		symbols = keysym.Default()
	}
	return &Grammar{symbols: symbols}
}

// ParseBinding parses one expanded key expression. path and line locate the
// key line in errors.
func (g *Grammar) ParseBinding(expr, path string, line int) (KeyBinding, error) {
	pieces := strings.Split(expr, "+")
	for i := range pieces {
		pieces[i] = strings.TrimSpace(pieces[i])
	}
	last := pieces[len(pieces)-1]

	modifiers := make([]keysym.Modifier, 0, len(pieces)-1)
	for _, piece := range pieces[:len(pieces)-1] {
		mod, ok := g.symbols.ResolveModifier(piece)
		if !ok {
			return KeyBinding{}, errors.InvalidConfig(errors.InvalidModifier, path, line, piece)
		}
		modifiers = append(modifiers, mod)
	}

	bare, onRelease, send := stripPrefix(last)
	if bare == "" {
		return KeyBinding{}, errors.InvalidConfig(errors.InvalidKeysym, path, line, last)
	}
	key, ok := g.symbols.ResolveKey(bare)
	if !ok {
		return KeyBinding{}, errors.InvalidConfig(errors.UnknownSymbol, path, line, bare)
	}

	kb := NewKeyBinding(key, modifiers...)
	kb.OnRelease = onRelease
	kb.Send = send
	return kb, nil
}

// stripPrefix peels every leading "@" and "~". Only the first two characters
// decide the flags: "@" or "~@" releases, "~" or "@~" sends.
func stripPrefix(piece string) (bare string, onRelease, send bool) {
	onRelease = strings.HasPrefix(piece, "@") || strings.HasPrefix(piece, "~@")
	send = strings.HasPrefix(piece, "~") || strings.HasPrefix(piece, "@~")
	bare = piece
	for len(bare) > 0 && (bare[0] == '@' || bare[0] == '~') {
		bare = bare[1:]
	}
	return bare, onRelease, send
}
