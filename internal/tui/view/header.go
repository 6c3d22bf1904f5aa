package view

import (
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/Iron-Ham/stepthrough/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// RenderTabs renders one tab per problem title with the active one
// emphasised, truncated to width.
func RenderTabs(s *styles.Styles, titles []string, active, width int) string {
	tabs := make([]string, len(titles))
	for i, t := range titles {
		if i == active {
			tabs[i] = s.TabActive.Render(t)
		} else {
			tabs[i] = s.TabInactive.Render(t)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if width > 0 {
		row = util.TruncateANSI(row, width)
	}
	return row
}

// ProblemState holds the problem header: what is being solved and on what
// input.
type ProblemState struct {
	Title       string
	Description string
	// Input is the text the trace was built from.
	Input string
	// TakesInput is false for problems with a fixed instance.
	TakesInput bool
	// Editor is the rendered text input while editing, or "".
	Editor string
	// Err is the error from the last simulation, if any.
	Err   error
	Width int
}

// RenderProblem renders the title, the wrapped description, the input line,
// and any simulation error.
func RenderProblem(s *styles.Styles, st ProblemState) string {
	lines := []string{
		s.Title.Render(st.Title),
		s.Subtitle.Render(util.Wrap(st.Description, st.Width)),
	}

	switch {
	case st.Editor != "":
		lines = append(lines, s.Warning.Render("input: ")+st.Editor)
	case st.TakesInput:
		lines = append(lines, s.Muted.Render("input: ")+util.TruncateANSI(strings.Join(strings.Fields(st.Input), " "), max(st.Width-7, 1)))
	default:
		lines = append(lines, s.Muted.Render("input: fixed instance"))
	}

	if st.Err != nil {
		lines = append(lines, errorStyle(s, st.Err).Render(util.Wrap("error: "+errorText(st.Err), st.Width)))
	}
	return strings.Join(lines, "\n")
}

// errorStyle renders errors the user can fix by editing the input as
// warnings and everything else as errors.
func errorStyle(s *styles.Styles, err error) lipgloss.Style {
	if errors.GetSeverity(err) <= errors.SeverityWarning {
		return s.Warning
	}
	return s.Error
}

// errorText is the message shown for err. Errors not meant for end users
// are logged by the model and only referred to here.
func errorText(err error) string {
	if errors.IsUserFacing(err) {
		return err.Error()
	}
	return "internal error, see the log"
}
