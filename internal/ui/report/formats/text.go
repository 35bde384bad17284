package formats

import (
	"fmt"
	"hotkeyc/internal/core/app"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))

	bindingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	cycleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)
)

type TextGenerator struct {
	table *app.Table
	color bool
}

func NewTextGenerator(t *app.Table, color bool) *TextGenerator {
	return &TextGenerator{table: t, color: color}
}

func (g *TextGenerator) style(s lipgloss.Style, text string) string {
	if !g.color {
		return text
	}
	return s.Render(text)
}

func (g *TextGenerator) Generate() (string, error) {
	doc := NewDocument(g.table)
	var buf strings.Builder

	buf.WriteString(g.style(titleStyle, fmt.Sprintf("%s (%d files, %d bindings)", doc.Root, len(doc.Units), len(doc.Entries))))
	buf.WriteString("\n")

	for _, row := range doc.Entries {
		loc := g.style(locationStyle, fmt.Sprintf("%s:%d", row.Path, row.Line))
		binding := g.style(bindingStyle, row.Binding)
		if row.Kind == app.KindHotkey {
			fmt.Fprintf(&buf, "%s  %s  ->  %s\n", loc, binding, row.Command)
			continue
		}
		fmt.Fprintf(&buf, "%s  %s ;\n", loc, binding)
		for _, chord := range row.Chords {
			fmt.Fprintf(&buf, "    %s  ->  %s\n", strings.Join(chord.Sequence, " ; "), chord.Command)
		}
	}

	if len(doc.Cycles) > 0 {
		buf.WriteString(g.style(cycleStyle, "include cycles:"))
		buf.WriteString("\n")
		for _, cycle := range doc.Cycles {
			fmt.Fprintf(&buf, "  %s -> %s\n", strings.Join(cycle, " -> "), cycle[0])
		}
	}
	return buf.String(), nil
}
