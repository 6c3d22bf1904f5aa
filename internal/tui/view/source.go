package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/Iron-Ham/stepthrough/internal/util"
)

const currentMarker = "▶ "

// SourceState holds what the source pane needs.
type SourceState struct {
	// Lines is the annotated source, one entry per line.
	Lines []string
	// Current is the index of the line to mark, or -1 for none.
	Current int
	// Width is the content width in columns.
	Width int
	// Height limits the number of lines shown; 0 shows all. The window
	// scrolls to keep Current visible.
	Height int
}

// RenderSource renders the source with line numbers. Numbers are the same
// 0-based indices that steps point at.
func RenderSource(s *styles.Styles, st SourceState) string {
	if len(st.Lines) == 0 {
		return s.Muted.Render("(no source)")
	}

	numWidth := len(fmt.Sprint(len(st.Lines) - 1))
	codeWidth := st.Width - len(currentMarker) - numWidth - 1

	start, end := sourceWindow(len(st.Lines), st.Current, st.Height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		num := fmt.Sprintf("%*d ", numWidth, i)
		code := st.Lines[i]
		if st.Width > 0 {
			code = util.TruncateANSI(code, max(codeWidth, 0))
		}
		if i == st.Current {
			rows = append(rows, s.CurrentLine.Render(currentMarker+num+code))
			continue
		}
		rows = append(rows, "  "+s.LineNumber.Render(num)+s.Code.Render(code))
	}
	return strings.Join(rows, "\n")
}

// sourceWindow returns the [start, end) range of lines to show so that
// current stays roughly centered.
func sourceWindow(n, current, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := current - height/2
	start = max(0, min(start, n-height))
	return start, start + height
}
