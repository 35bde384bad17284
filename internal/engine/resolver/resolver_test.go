package resolver

import (
	"hotkeyc/internal/core/errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapReader map[string]string

func (m mapReader) ReadFile(path string) ([]byte, error) {
	text, ok := m[filepath.Clean(path)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(text), nil
}

type failingReader struct{}

func (failingReader) ReadFile(string) ([]byte, error) {
	return nil, fs.ErrPermission
}

func TestDiscoverImports(t *testing.T) {
	text := "include /a.conf\n" +
		"  include /indented.conf\n" +
		"include\n" +
		"include  /double-space.conf\n" +
		"includes /b.conf\n" +
		"# include /commented.conf\n" +
		"include /c.conf trailing\r\n" +
		"super + a\n" +
		"\techo include /x\n"

	assert.Equal(t, []string{"/a.conf", "/c.conf"}, DiscoverImports(text))
	assert.Empty(t, DiscoverImports(""))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "root.conf")
	require.NoError(t, os.WriteFile(path, []byte("include /other.conf\nsuper + a\n\techo a\n"), 0o644))

	unit, err := Load(OSReader{}, path)
	require.NoError(t, err)
	assert.Equal(t, path, unit.Path)
	assert.Equal(t, []string{"/other.conf"}, unit.Imports)

	_, err = Load(OSReader{}, filepath.Join(dir, "missing.conf"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeConfigNotFound))

	_, err = Load(failingReader{}, path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeIO))
}

func TestClosureOrder(t *testing.T) {
	r := NewResolver(mapReader{
		"/root.conf": "include /a.conf\ninclude /b.conf\n",
		"/a.conf":    "include /c.conf\n",
		"/b.conf":    "super + b\n\techo b\n",
		"/c.conf":    "super + c\n\techo c\n",
	}, nil)

	c, err := r.Closure("/root.conf")
	require.NoError(t, err)
	assert.Equal(t, []string{"/root.conf", "/a.conf", "/b.conf", "/c.conf"}, c.Paths())
	assert.Equal(t, 3, c.Graph.EdgeCount())
	assert.Empty(t, c.Graph.DetectCycles())
}

func TestClosureSharedIncludeLoadedOnce(t *testing.T) {
	r := NewResolver(mapReader{
		"/root.conf":   "include /a.conf\ninclude /b.conf\n",
		"/a.conf":      "include /common.conf\n",
		"/b.conf":      "include /./common.conf\n",
		"/common.conf": "",
	}, nil)

	c, err := r.Closure("/root.conf")
	require.NoError(t, err)
	assert.Equal(t, []string{"/root.conf", "/a.conf", "/b.conf", "/common.conf"}, c.Paths())
	assert.Equal(t, []string{"/a.conf", "/b.conf"}, c.Graph.IncludedBy("/common.conf"))
}

func TestClosureTerminatesOnCycle(t *testing.T) {
	r := NewResolver(mapReader{
		"/root.conf": "include /a.conf\n",
		"/a.conf":    "include /b.conf\n",
		"/b.conf":    "include /a.conf\ninclude /root.conf\n",
	}, nil)

	c, err := r.Closure("/root.conf")
	require.NoError(t, err)
	assert.Equal(t, []string{"/root.conf", "/a.conf", "/b.conf"}, c.Paths())
	assert.NotEmpty(t, c.Graph.DetectCycles())
}

func TestClosureSelfInclude(t *testing.T) {
	r := NewResolver(mapReader{"/root.conf": "include /root.conf\n"}, nil)

	c, err := r.Closure("/root.conf")
	require.NoError(t, err)
	assert.Equal(t, []string{"/root.conf"}, c.Paths())
}

func TestClosureMissingInclude(t *testing.T) {
	r := NewResolver(mapReader{"/root.conf": "include /missing.conf\n"}, nil)

	c, err := r.Closure("/root.conf")
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, errors.IsCode(err, errors.CodeConfigNotFound))
	assert.Contains(t, err.Error(), "/missing.conf")
}

func TestClosureMissingRoot(t *testing.T) {
	r := NewResolver(mapReader{}, nil)

	_, err := r.Closure("/root.conf")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeConfigNotFound))
}

func TestClosureOnDisk(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "root.conf")
	child := filepath.Join(dir, "child.conf")
	require.NoError(t, os.WriteFile(root, []byte("include "+child+"\n"), 0o644))
	require.NoError(t, os.WriteFile(child, []byte("super + a\n\techo a\n"), 0o644))

	c, err := NewResolver(nil, nil).Closure(root)
	require.NoError(t, err)
	require.Len(t, c.Units, 2)
	assert.Equal(t, child, c.Units[1].Path)
	assert.Contains(t, c.Units[1].Text, "echo a")
}

func TestPolicy(t *testing.T) {
	p, err := NewPolicy([]string{"/etc/hotkeyc/**"}, []string{"**/secret*"})
	require.NoError(t, err)

	assert.True(t, p.Permits("/etc/hotkeyc/keys.conf"))
	assert.True(t, p.Permits("/etc/hotkeyc/a/b.conf"))
	assert.False(t, p.Permits("/etc/hotkeyc/secret.conf"))
	assert.False(t, p.Permits("/tmp/keys.conf"))

	var nilPolicy *Policy
	assert.True(t, nilPolicy.Permits("/anything"))
}

func TestClosureRejectedByPolicy(t *testing.T) {
	p, err := NewPolicy(nil, []string{"/tmp/**"})
	require.NoError(t, err)
	r := NewResolver(mapReader{
		"/root.conf":     "include /tmp/evil.conf\n",
		"/tmp/evil.conf": "",
	}, p)

	_, err = r.Closure("/root.conf")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidationError))
	assert.Contains(t, err.Error(), "/tmp/evil.conf")
}
