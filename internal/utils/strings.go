package utils

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/deary/internal/ui"
)

// FormatNames formats entry names into an indented list.
func FormatNames(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString("    - ")
		b.WriteString(ui.Entry.Sprint(name))
		b.WriteString("\n")
	}
	return b.String()
}

// Plural returns "<n> <singular>" or "<n> <plural>".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Truncate shortens s to at most width runes, marking the cut with "…".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
