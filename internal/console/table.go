package console

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// FprintTable prints a table with the given headers and data to w.
// data should be a flat list of strings, length must be a multiple of len(headers).
// useLineChars determines if Unicode box drawing characters are used.
func FprintTable(w io.Writer, headers []string, data []string, useLineChars bool) {
	fmt.Fprintln(w, RenderTable(headers, data, useLineChars))
}

// RenderTable renders the table as a string. Cells may contain tags.
func RenderTable(headers []string, data []string, useLineChars bool) string {
	cols := len(headers)
	if cols == 0 {
		return ""
	}

	border := lipgloss.ASCIIBorder()
	if useLineChars {
		border = lipgloss.NormalBorder()
	}

	rendered := make([]string, cols)
	for i, h := range headers {
		rendered[i] = ToANSI(h)
	}

	var rows [][]string
	for i := 0; i < len(data); i += cols {
		row := make([]string, cols)
		for j := range cols {
			if i+j < len(data) {
				row[j] = ToANSI(data[i+j])
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(border).
		Headers(rendered...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.String()
}
