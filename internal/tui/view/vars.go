package view

import (
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/trace"
	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/Iron-Ham/stepthrough/internal/util"
)

// RenderVars renders one "name = value" row per variable, in the order the
// simulator declared them. Names are aligned and unset values are muted.
func RenderVars(s *styles.Styles, vars trace.Vars, width int) string {
	if vars.Len() == 0 {
		return s.Muted.Render("(none)")
	}

	nameWidth := 0
	for _, name := range vars.Names() {
		nameWidth = max(nameWidth, len(name))
	}

	rows := make([]string, 0, vars.Len())
	for name, v := range vars.All() {
		value := v.String()
		if width > 0 {
			value = util.TruncateANSI(value, max(width-nameWidth-3, 1))
		}
		style := s.VarValue
		if v.IsAbsent() {
			style = s.Muted
		}
		rows = append(rows, s.VarName.Render(util.PadRight(name, nameWidth))+" = "+style.Render(value))
	}
	return strings.Join(rows, "\n")
}
