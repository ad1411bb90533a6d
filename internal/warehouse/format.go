package warehouse

import (
	"fmt"
	"strings"
)

// maxDisplayRows caps the number of data rows the default formatter prints.
// The trailing "Total rows" line always reports the full count.
const maxDisplayRows = 100

// minColumnWidth is the floor for column display widths in the grid.
const minColumnWidth = 8

// FormatTable renders a result set as a bordered text grid:
//
//	+----------+----------+
//	| format   | count    |
//	+----------+----------+
//	| DELTA    | 150      |
//	| PARQUET  | 75       |
//	+----------+----------+
//	Total rows: 2
//
// Column width is max(8, label length, widest cell). Nil cells render as
// NULL. Past 100 rows the grid is truncated and one summary line reports
// the elided count.
func FormatTable(rows [][]any, columns []string) string {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = minColumnWidth
		if len(col) > widths[i] {
			widths[i] = len(col)
		}
	}
	rendered := make([][]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(columns))
		for i := range columns {
			var cell string
			if i < len(row) {
				cell = cellText(row[i])
			}
			cells[i] = cell
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rendered[r] = cells
	}

	var b strings.Builder
	sep := separator(widths)

	b.WriteString(sep)
	writeRow(&b, columns, widths)
	b.WriteString(sep)

	display := rendered
	if len(display) > maxDisplayRows {
		display = display[:maxDisplayRows]
	}
	for _, cells := range display {
		writeRow(&b, cells, widths)
	}
	if elided := len(rows) - maxDisplayRows; elided > 0 {
		fmt.Fprintf(&b, "... %d more rows\n", elided)
	}
	b.WriteString(sep)

	fmt.Fprintf(&b, "Total rows: %d\n", len(rows))
	return b.String()
}

// cellText renders one cell for display. Nil is the SQL NULL.
func cellText(v any) string {
	if v == nil {
		return "NULL"
	}
	if bs, ok := v.([]byte); ok {
		return string(bs)
	}
	return fmt.Sprintf("%v", v)
}

// separator builds the +----+----+ border line for the given widths.
func separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}

// writeRow writes one grid row, each cell padded to its column width with
// a leading and trailing space.
func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(b, "| %-*s ", w, cell)
	}
	b.WriteString("|\n")
}
