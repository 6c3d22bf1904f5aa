package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/player"
	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/Iron-Ham/stepthrough/internal/util"
)

// ControlsState holds the player state shown under the panes.
type ControlsState struct {
	View  player.View
	Width int
}

// RenderControls renders the play state, position, speed, the current
// step's description, and a progress bar.
func RenderControls(s *styles.Styles, st ControlsState) string {
	v := st.View

	var state string
	switch {
	case v.Playing:
		state = s.Playing.Render("▶ playing")
	case v.Len > 0 && v.AtEnd():
		state = s.Paused.Render("■ done")
	default:
		state = s.Paused.Render("❚❚ paused")
	}

	position := 0
	if v.Len > 0 {
		position = v.Cursor + 1
	}
	status := fmt.Sprintf("%s  step %d/%d  speed %s", state, position, v.Len, v.Speed)

	desc := v.Step.Description()
	if line := v.Step.Line(); line >= 0 {
		desc = fmt.Sprintf("line %d: %s", line, desc)
	}

	lines := []string{status, s.Subtitle.Render(desc), ProgressBar(s, position, v.Len, st.Width)}
	if st.Width > 0 {
		for i, l := range lines {
			lines[i] = util.TruncateANSI(l, st.Width)
		}
	}
	return strings.Join(lines, "\n")
}

// ProgressBar renders done out of total as a bar width columns wide.
func ProgressBar(s *styles.Styles, done, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = min(width, done*width/total)
	}
	return s.ProgressDone.Render(strings.Repeat("━", filled)) +
		s.ProgressTodo.Render(strings.Repeat("─", width-filled))
}
