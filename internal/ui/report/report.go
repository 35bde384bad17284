// Package report renders compiled binding tables and compile statistics.
package report

import (
	"fmt"
	"hotkeyc/internal/core/app"
	"hotkeyc/internal/core/config"
	"hotkeyc/internal/core/errors"
	"hotkeyc/internal/ui/report/formats"
	"io"
	"strings"
)

type Options struct {
	Color bool
}

type generator interface {
	Generate() (string, error)
}

// Render writes table to w in the named format: text, tsv, yaml or json.
func Render(w io.Writer, table *app.Table, format string, opts Options) error {
	var gen generator
	switch strings.ToLower(strings.TrimSpace(format)) {
	case config.FormatText, "":
		gen = formats.NewTextGenerator(table, opts.Color)
	case config.FormatTSV:
		gen = formats.NewTSVGenerator(table)
	case config.FormatYAML:
		gen = formats.NewYAMLGenerator(table)
	case config.FormatJSON:
		gen = formats.NewJSONGenerator(table)
	default:
		return errors.New(errors.CodeValidationError, fmt.Sprintf("unknown output format %q", format))
	}

	out, err := gen.Generate()
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to render binding table")
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to write binding table")
	}
	return nil
}

// RenderIncludeChain writes the include path from one file to another, one
// file per line.
func RenderIncludeChain(w io.Writer, chain []string) error {
	for i, file := range chain {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", i), file); err != nil {
			return err
		}
	}
	return nil
}
