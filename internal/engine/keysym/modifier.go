package keysym

import "strings"

// Modifier is a key held together with a keysym.
type Modifier int

const (
	Super Modifier = iota + 1
	Alt
	Control
	Shift
)

func (m Modifier) String() string {
	switch m {
	case Super:
		return "Super"
	case Alt:
		return "Alt"
	case Control:
		return "Control"
	case Shift:
		return "Shift"
	default:
		return "Unknown"
	}
}

var modifierAliases = map[string]Modifier{
	"super":   Super,
	"mod4":    Super,
	"alt":     Alt,
	"mod1":    Alt,
	"control": Control,
	"ctrl":    Control,
	"shift":   Shift,
}

// LookupModifier resolves a modifier alias, ignoring case.
func LookupModifier(name string) (Modifier, bool) {
	m, ok := modifierAliases[strings.ToLower(name)]
	return m, ok
}
