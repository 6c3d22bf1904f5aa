package view

import (
	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
)

// panelChrome is the horizontal space taken by a panel's border and padding.
const panelChrome = 4

// ContentWidth returns the usable text width inside a panel of the given
// outer width.
func ContentWidth(outer int) int {
	return max(outer-panelChrome, 1)
}

// Panel draws body in a titled, bordered box exactly outer columns wide.
func Panel(s *styles.Styles, title, body string, outer int) string {
	content := s.PanelTitle.Render(title)
	if body != "" {
		content += "\n" + body
	}
	// Width covers padding but not the border.
	return s.Panel.Width(max(outer-2, 1)).Render(content)
}
