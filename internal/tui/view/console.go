package view

import (
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/Iron-Ham/stepthrough/internal/util"
)

// RenderConsole renders accumulated output, wrapped to width and limited to
// the last height lines (0 for no limit).
func RenderConsole(s *styles.Styles, output string, width, height int) string {
	if output == "" {
		return s.Muted.Render("(no output yet)")
	}
	lines := strings.Split(util.Wrap(output, width), "\n")
	if height > 0 && len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return s.Output.Render(strings.Join(lines, "\n"))
}
