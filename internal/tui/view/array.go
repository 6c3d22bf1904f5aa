package view

import (
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/trace"
	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// RenderArray draws each cell as a small box and emphasises the cells at
// the indices step highlights. Boxes wrap onto further rows to fit width.
// Highlights outside cells are ignored. It returns "" when there are no cells.
func RenderArray(s *styles.Styles, cells []string, step trace.Step, width int) string {
	if len(cells) == 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0
	for i, c := range cells {
		style := s.Cell
		if step.IsHighlighted(i) {
			style = s.CellSelected
		}
		box := style.Render(c)
		w := lipgloss.Width(box)
		if width > 0 && rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, box)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return strings.Join(rows, "\n")
}
