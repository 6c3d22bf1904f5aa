// Package util holds terminal text helpers shared by the TUI and the
// trace exporter. All widths are visual columns: ANSI escape sequences take
// no space and wide characters take two.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// TruncateANSI truncates s to maxWidth columns, ending in "..." when cut.
// Escape sequences are preserved.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return ellipsis[:maxWidth]
	}
	return ansi.Truncate(s, maxWidth, ellipsis)
}

// PadRight pads s with spaces to width columns. Strings already at least
// width wide are returned unchanged.
func PadRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Wrap word-wraps s to width columns. A width of zero or less disables
// wrapping.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wordwrap(s, width, "")
}
