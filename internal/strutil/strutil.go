// Package strutil provides additional string manipulation functions.
package strutil

import (
	"charm.land/lipgloss/v2"
)

// Ellipsis is appended to strings shortened by Truncate.
const Ellipsis = "..."

// Truncate shortens s to at most width display cells, ending it with
// Ellipsis when anything was cut. ANSI codes do not count towards the
// width. A width below 1 leaves s unchanged.
func Truncate(s string, width int) string {
	if width < 1 || lipgloss.Width(s) <= width {
		return s
	}
	if width <= len(Ellipsis) {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return lipgloss.NewStyle().MaxWidth(width-len(Ellipsis)).Render(s) + Ellipsis
}
