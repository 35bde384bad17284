package resolver

import (
	"hotkeyc/internal/core/errors"
	"os"
	"strings"
)

// ImportKeyword starts an include directive: "include <path>".
const ImportKeyword = "include"

// SourceUnit is one loaded config file. It is not modified after Load.
type SourceUnit struct {
	Path    string
	Text    string
	Imports []string
}

// Reader reads a whole file.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads from the host filesystem.
type OSReader struct{}

func (OSReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DiscoverImports scans text for include directives. A directive is a line
// whose first space separated token is exactly the import keyword; the
// second token is taken verbatim as the path. Paths are not resolved
// relative to anything.
func DiscoverImports(text string) []string {
	var imports []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		tokens := strings.Split(line, " ")
		if tokens[0] != ImportKeyword || len(tokens) < 2 || tokens[1] == "" {
			continue
		}
		imports = append(imports, tokens[1])
	}
	return imports
}

// Load reads one file into a SourceUnit. A missing file fails with
// CONFIG_NOT_FOUND, any other read failure with IO_ERROR.
func Load(r Reader, path string) (SourceUnit, error) {
	data, err := r.ReadFile(path)
	if err != nil {
		return SourceUnit{}, errors.FromRead(path, err)
	}
	text := string(data)
	return SourceUnit{Path: path, Text: text, Imports: DiscoverImports(text)}, nil
}
