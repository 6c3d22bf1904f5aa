// Package styles holds the lipgloss styles for the step-through TUI. Styles
// are built from a ColorPalette so the whole screen follows one theme.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles is the full set of styles used by the views.
type Styles struct {
	Palette *ColorPalette

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style

	// Tab styles
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Panels
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Source pane
	LineNumber  lipgloss.Style
	CurrentLine lipgloss.Style
	Code        lipgloss.Style

	// Variables and array panes
	VarName      lipgloss.Style
	VarValue     lipgloss.Style
	Cell         lipgloss.Style
	CellSelected lipgloss.Style

	// Console and controls
	Output       lipgloss.Style
	Playing      lipgloss.Style
	Paused       lipgloss.Style
	ProgressDone lipgloss.Style
	ProgressTodo lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// New builds Styles from a palette.
func New(p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}
	s := &Styles{Palette: p}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Error = lipgloss.NewStyle().Bold(true).Foreground(p.Error)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)

	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 2)
	s.TabInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	s.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.LineNumber = lipgloss.NewStyle().Foreground(p.Muted)
	s.CurrentLine = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
	s.Code = lipgloss.NewStyle().Foreground(p.Text)

	s.VarName = lipgloss.NewStyle().Foreground(p.Muted)
	s.VarValue = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	s.Cell = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	s.CellSelected = s.Cell.
		BorderForeground(p.Primary).
		Background(p.Surface).
		Foreground(p.Primary).
		Bold(true)

	s.Output = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Playing = lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
	s.Paused = lipgloss.NewStyle().Bold(true).Foreground(p.Warning)
	s.ProgressDone = lipgloss.NewStyle().Foreground(p.Primary)
	s.ProgressTodo = lipgloss.NewStyle().Foreground(p.Border)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)
	s.HelpDesc = lipgloss.NewStyle().Foreground(p.Muted)

	if p.Primary == "" {
		s.TabActive = s.TabActive.Reverse(true)
		s.CurrentLine = s.CurrentLine.Reverse(true)
		s.CellSelected = s.CellSelected.Reverse(true)
	}
	return s
}

// ForTheme builds Styles for a theme name. Unknown names use the default
// theme.
func ForTheme(name string) *Styles {
	if !IsValidTheme(name) {
		name = string(ThemeDefault)
	}
	return New(GetPalette(ThemeName(name)))
}
