package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mcuc-cli/mcuc/style"
)

var (
	headerStyle = style.New().Bold(true).Padding(0, 1)
	cellStyle   = style.New().Padding(0, 1)
)

// writeTable prints rows as a bordered table. When swatchCol is positive,
// that column is painted with the hex color found in column swatchCol-1.
func writeTable(out io.Writer, headers []string, rows [][]string, swatchCol int) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(rows) {
				return headerStyle
			}
			if col == swatchCol && swatchCol > 0 {
				return style.Swatch(rows[row][swatchCol-1])
			}
			return cellStyle
		})

	_, _ = fmt.Fprintln(out, t.Render())
}

func renderThemeTable(doc *Document, opts Options) string {
	out := opts.out()
	eachSection(doc, func(name string, section *Section) {
		rows := make([][]string, 0, section.Len())
		each(section, func(key, value string) {
			rows = append(rows, []string{key, value, "    "})
		})

		_, _ = fmt.Fprintf(out, "Scheme: %s\n", name)
		writeTable(out, []string{"Key", "Value", ""}, rows, 2)
	})
	return ""
}
