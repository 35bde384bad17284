package keysym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKey(t *testing.T) {
	table := Default()
	tests := []struct {
		name string
		want Key
	}{
		{"a", "KEY_A"},
		{"A", "KEY_A"},
		{"Return", "KEY_ENTER"},
		{"enter", "KEY_ENTER"},
		{"F24", "KEY_F24"},
		{"XF86AudioRaiseVolume", "KEY_VOLUMEUP"},
		{",", "KEY_COMMA"},
		{"comma", "KEY_COMMA"},
		{"prior", "KEY_PAGEDOWN"},
	}
	for _, tt := range tests {
		got, ok := table.ResolveKey(tt.name)
		if !ok {
			t.Errorf("ResolveKey(%q) not found", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveKey(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}

	_, ok := table.ResolveKey("hyper")
	assert.False(t, ok)
	_, ok = table.ResolveKey("f25")
	assert.False(t, ok)
}

func TestResolveModifier(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"super", Super},
		{"Mod4", Super},
		{"ALT", Alt},
		{"mod1", Alt},
		{"control", Control},
		{"Ctrl", Control},
		{"shift", Shift},
	}
	for _, tt := range tests {
		got, ok := Default().ResolveModifier(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, ok := Default().ResolveModifier("hyper")
	assert.False(t, ok)
}

func TestWithAliases(t *testing.T) {
	table, err := WithAliases(map[string]string{"Launcher": "super_l_missing"})
	assert.Error(t, err)
	assert.Nil(t, table)

	table, err = WithAliases(map[string]string{"Launcher": "Space", "lock": "scrolllock"})
	require.NoError(t, err)

	key, ok := table.ResolveKey("launcher")
	require.True(t, ok)
	assert.Equal(t, Key("KEY_SPACE"), key)

	key, ok = table.ResolveKey("LOCK")
	require.True(t, ok)
	assert.Equal(t, "SCROLLLOCK", key.Short())

	// builtin names are still served
	_, ok = table.ResolveKey("b")
	assert.True(t, ok)
}

func TestModifierString(t *testing.T) {
	assert.Equal(t, "Super", Super.String())
	assert.Equal(t, "Control", Control.String())
	assert.Equal(t, "Unknown", Modifier(0).String())
}
