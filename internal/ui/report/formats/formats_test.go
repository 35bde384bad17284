package formats

import (
	"encoding/json"
	"hotkeyc/internal/core/app"
	"hotkeyc/internal/engine/keysym"
	"hotkeyc/internal/engine/parser"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTable() *app.Table {
	release := parser.NewKeyBinding("KEY_A", keysym.Super)
	release.OnRelease = true
	return &app.Table{
		ID:    "test-id",
		Root:  "/root.conf",
		Units: []string{"/root.conf", "/media.conf"},
		Entries: []app.Entry{
			{Path: "/root.conf", Line: 2, Output: parser.Hotkey{Binding: release, Command: "echo\ta"}},
			{Path: "/media.conf", Line: 1, Output: parser.KeyChord{
				Entry: parser.NewKeyBinding("KEY_1", keysym.Super),
				Sequences: [][]parser.KeyBinding{
					{parser.NewKeyBinding("KEY_3"), parser.NewKeyBinding("KEY_5")},
					{parser.NewKeyBinding("KEY_4"), parser.NewKeyBinding("KEY_5")},
				},
				Commands: []string{"one", "two"},
			}},
		},
		Cycles: [][]string{{"/root.conf", "/media.conf"}},
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(sampleTable())

	require.Len(t, doc.Entries, 2)
	assert.Equal(t, app.KindHotkey, doc.Entries[0].Kind)
	assert.Equal(t, "super + @a", doc.Entries[0].Binding)
	assert.True(t, doc.Entries[0].OnRelease)
	assert.Equal(t, "KEY_A", doc.Entries[0].Keysym)

	chord := doc.Entries[1]
	assert.Equal(t, app.KindChord, chord.Kind)
	require.Len(t, chord.Chords, 2)
	assert.Equal(t, []string{"3", "5"}, chord.Chords[0].Sequence)
	assert.Equal(t, "two", chord.Chords[1].Command)
}

func TestTSVGenerator(t *testing.T) {
	out, err := NewTSVGenerator(sampleTable()).Generate()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Kind\tPath\tLine\tBinding\tSequence\tCommand", lines[0])
	assert.Equal(t, "hotkey\t/root.conf\t2\tsuper + @a\t\techo\\ta", lines[1])
	assert.Equal(t, "chord\t/media.conf\t1\tsuper + 1\t3 ; 5\tone", lines[2])
}

func TestTextGenerator(t *testing.T) {
	out, err := NewTextGenerator(sampleTable(), false).Generate()
	require.NoError(t, err)

	assert.Contains(t, out, "/root.conf (2 files, 2 bindings)")
	assert.Contains(t, out, "/root.conf:2  super + @a  ->  echo\ta")
	assert.Contains(t, out, "4 ; 5  ->  two")
	assert.Contains(t, out, "/root.conf -> /media.conf -> /root.conf")
}

func TestYAMLGenerator(t *testing.T) {
	out, err := NewYAMLGenerator(sampleTable()).Generate()
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "test-id", doc.ID)
	require.Len(t, doc.Entries, 2)
	assert.Len(t, doc.Entries[1].Chords, 2)
}

func TestJSONGenerator(t *testing.T) {
	out, err := NewJSONGenerator(sampleTable()).Generate()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	assert.Equal(t, "/root.conf", raw["root"])
	entries, ok := raw["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 2)
	assert.NotContains(t, entries[0], "chords")
}
