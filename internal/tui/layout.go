package tui

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/tui/keymap"
	"github.com/Iron-Ham/stepthrough/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// StackedWidth is the terminal width below which panes stack vertically.
	StackedWidth = 90
	// ConsoleHeight is the number of output lines kept visible.
	ConsoleHeight = 4
	// MinSourceHeight is the least number of source lines shown.
	MinSourceHeight = 3

	// panelOverhead is the border plus title row of a panel.
	panelOverhead = 3
)

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	s := m.styles
	p := m.problems[m.active]

	titles := make([]string, len(m.problems))
	for i, prob := range m.problems {
		titles[i] = prob.Title
	}
	header := view.RenderTabs(s, titles, m.active, m.width)

	problem := view.ProblemState{
		Title:       p.Title,
		Description: p.Description,
		Input:       m.inputs[p.ID],
		TakesInput:  p.TakesInput,
		Err:         m.err,
		Width:       m.width,
	}
	if m.mode == keymap.ModeEdit {
		problem.Editor = m.editor.View()
	}
	top := lipgloss.JoinVertical(lipgloss.Left, header, view.RenderProblem(s, problem))

	controls := view.RenderControls(s, view.ControlsState{View: m.view, Width: m.width})
	helpBar := view.RenderHelpBar(s, m.mode, m.width)

	var body string
	if m.mode == keymap.ModeHelp {
		body = view.Panel(s, "Help", view.RenderHelp(s, m.keys, keymap.ModeNormal), m.width)
	} else {
		avail := m.height - lipgloss.Height(top) - lipgloss.Height(controls) - lipgloss.Height(helpBar)
		body = m.renderPanes(avail)
	}

	return strings.Join([]string{top, body, controls, helpBar}, "\n")
}

// renderPanes lays out source beside variables, array, and console, or
// stacks them on narrow terminals. height is the space left for the panes.
func (m Model) renderPanes(height int) string {
	s := m.styles
	step := m.view.Step

	leftWidth, rightWidth := m.width*11/20, m.width-m.width*11/20
	stacked := m.width < StackedWidth
	if stacked {
		leftWidth, rightWidth = m.width, m.width
	}

	right := []string{
		view.Panel(s, "Variables", view.RenderVars(s, step.Vars(), view.ContentWidth(rightWidth)), rightWidth),
	}
	if cells := m.cells(); len(cells) > 0 {
		right = append(right, view.Panel(s, "Array",
			view.RenderArray(s, cells, step, view.ContentWidth(rightWidth)), rightWidth))
	}
	right = append(right, view.Panel(s, "Console",
		view.RenderConsole(s, m.view.Output, view.ContentWidth(rightWidth), ConsoleHeight), rightWidth))
	rightCol := lipgloss.JoinVertical(lipgloss.Left, right...)

	sourceHeight := height - panelOverhead
	if stacked {
		sourceHeight -= lipgloss.Height(rightCol)
	}
	source := view.Panel(s, "Source", view.RenderSource(s, view.SourceState{
		Lines:   m.problems[m.active].SourceLines(),
		Current: step.Line(),
		Width:   view.ContentWidth(leftWidth),
		Height:  max(sourceHeight, MinSourceHeight),
	}), leftWidth)

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, source, rightCol)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, source, rightCol)
}

// cells returns what the array pane shows: the problem's input cells, or
// for problems without them the first list variable of the current step.
func (m Model) cells() []string {
	p := m.problems[m.active]
	if cells := p.Cells(m.inputs[p.ID]); cells != nil {
		return cells
	}
	for _, v := range m.view.Step.Vars().All() {
		if list, ok := v.AsList(); ok {
			out := make([]string, len(list))
			for i, n := range list {
				out[i] = strconv.FormatInt(n, 10)
			}
			return out
		}
	}
	return nil
}
