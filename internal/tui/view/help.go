package view

import (
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/tui/keymap"
	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/Iron-Ham/stepthrough/internal/util"
)

// RenderHelp renders the full key reference for a mode, grouped by
// category.
func RenderHelp(s *styles.Styles, km *keymap.Keymap, mode keymap.Mode) string {
	help := km.Help(mode)

	keyWidth := 0
	for _, entries := range help {
		for _, e := range entries {
			keyWidth = max(keyWidth, len(strings.Join(e.Keys, " / ")))
		}
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Keys"))
	for _, cat := range km.GetCategories(mode) {
		sb.WriteString("\n\n")
		sb.WriteString(s.PanelTitle.Render(cat))
		for _, e := range help[cat] {
			sb.WriteString("\n  ")
			sb.WriteString(s.HelpKey.Render(util.PadRight(strings.Join(e.Keys, " / "), keyWidth)))
			sb.WriteString("  ")
			sb.WriteString(s.HelpDesc.Render(e.Description))
		}
	}
	return sb.String()
}

type hint struct{ key, desc string }

var helpBarHints = map[keymap.Mode][]hint{
	keymap.ModeNormal: {
		{"space", "play"}, {"←/→", "step"}, {"r", "reset"}, {"s", "speed"},
		{"tab", "problem"}, {"e", "edit input"}, {"?", "help"}, {"q", "quit"},
	},
	keymap.ModeEdit: {{"enter", "apply"}, {"esc", "cancel"}},
	keymap.ModeHelp: {{"?/esc", "close help"}, {"q", "quit"}},
}

// RenderHelpBar renders a one-line key hint for mode, truncated to width.
func RenderHelpBar(s *styles.Styles, mode keymap.Mode, width int) string {
	hints := helpBarHints[mode]
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = s.HelpKey.Render(h.key) + " " + s.HelpDesc.Render(h.desc)
	}
	bar := strings.Join(parts, "  ")
	if width > 0 {
		bar = util.TruncateANSI(bar, width)
	}
	return bar
}
