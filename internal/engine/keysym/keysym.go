// Package keysym holds the symbol tables the binding grammar resolves
// modifier and key names against.
package keysym

import (
	"fmt"
	"sort"
	"strings"
)

// Key is the evdev name of a physical key, e.g. "KEY_A".
type Key string

func (k Key) String() string { return string(k) }

// Short renders the key without its evdev prefix.
func (k Key) Short() string { return strings.TrimPrefix(string(k), "KEY_") }

// Resolver looks up keysym and modifier names. Lookups ignore case.
type Resolver interface {
	ResolveKey(name string) (Key, bool)
	ResolveModifier(name string) (Modifier, bool)
}

// Table is the builtin alias table, optionally extended with user aliases.
type Table struct {
	extra map[string]Key
}

// Default returns the builtin table.
func Default() *Table {
	return &Table{}
}

// WithAliases layers alias -> existing-name mappings over the builtin table.
// Every target must already resolve.
func WithAliases(aliases map[string]string) (*Table, error) {
	t := &Table{extra: make(map[string]Key, len(aliases))}
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		target := aliases[name]
		key, ok := builtin[strings.ToLower(strings.TrimSpace(target))]
		if !ok {
			return nil, fmt.Errorf("keysym alias %q targets unknown key %q", name, target)
		}
		t.extra[strings.ToLower(strings.TrimSpace(name))] = key
	}
	return t, nil
}

func (t *Table) ResolveKey(name string) (Key, bool) {
	lower := strings.ToLower(name)
	if key, ok := builtin[lower]; ok {
		return key, true
	}
	if t != nil {
		if key, ok := t.extra[lower]; ok {
			return key, true
		}
	}
	return "", false
}

func (t *Table) ResolveModifier(name string) (Modifier, bool) {
	return LookupModifier(name)
}

// Known reports whether name resolves in the builtin table.
func Known(name string) bool {
	_, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
