// Package display provides console formatting helpers for rename output.
package display

import (
	"fmt"
	"strings"
)

// maxNameWidth caps name display so old -> new lines stay on one row.
const maxNameWidth = 48

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// FormatRename renders one rename as "old -> new" with both sides capped.
func FormatRename(oldName, newName string) string {
	return fmt.Sprintf("%s -> %s", Truncate(oldName, maxNameWidth), Truncate(newName, maxNameWidth))
}

// FormatCount pluralizes a counted noun (regular plurals only).
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Rule renders a horizontal separator of the given width.
func Rule(width int) string {
	if width <= 0 {
		width = 30
	}
	return strings.Repeat("=", width)
}
