package render

import (
	"strings"
)

const cellPadding = 2

// Table renders already-serialized result content as an aligned text table
// for the console preview: every column is padded to its widest cell and
// the whole block is framed by dashed border lines.
func Table(content string) string {
	lines := strings.Split(content, "\n")

	rows := make([][]string, len(lines))
	var widths []int
	for i, line := range lines {
		cells := strings.Split(line, columnDelimiter)
		rows[i] = cells
		for col, cell := range cells {
			if col >= len(widths) {
				widths = append(widths, 0)
			}
			if len(cell) > widths[col] {
				widths[col] = len(cell)
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w + cellPadding
	}
	border := strings.Repeat("-", total)

	var b strings.Builder
	b.WriteString(border + "\n")
	for _, cells := range rows {
		for col, cell := range cells {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[col]-len(cell)+cellPadding))
		}
		b.WriteString("\n")
	}
	b.WriteString(border)

	return b.String()
}
