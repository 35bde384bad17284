package formats

import (
	"fmt"
	"hotkeyc/internal/core/app"
	"strings"
)

var tsvEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`)

type TSVGenerator struct {
	table *app.Table
}

func NewTSVGenerator(t *app.Table) *TSVGenerator {
	return &TSVGenerator{table: t}
}

// Generate writes one row per hotkey and one row per chord sequence.
func (g *TSVGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("Kind\tPath\tLine\tBinding\tSequence\tCommand\n")
	for _, row := range NewDocument(g.table).Entries {
		if row.Kind == app.KindHotkey {
			buf.WriteString(fmt.Sprintf("%s\t%s\t%d\t%s\t\t%s\n",
				row.Kind, row.Path, row.Line, row.Binding, tsvEscaper.Replace(row.Command)))
			continue
		}
		for _, chord := range row.Chords {
			buf.WriteString(fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%s\n",
				row.Kind, row.Path, row.Line, row.Binding,
				strings.Join(chord.Sequence, " ; "),
				tsvEscaper.Replace(chord.Command),
			))
		}
	}

	return buf.String(), nil
}
