package cmd

import (
	"os"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/Iron-Ham/stepthrough/internal/config"
	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/export"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var traceCmd = &cobra.Command{
	Use:   "trace <algorithm>",
	Short: "Print the full trace of a problem",
	Long: `Simulate a problem and print every step without opening the viewer.

The text format prints one block per step with the source line it points
at; json and yaml are meant for other tools.

Examples:
  stepthrough trace water --input "10 6 40"
  stepthrough trace poker --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

var (
	traceInput  string
	traceFormat string
	traceWidth  int
)

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringVarP(&traceInput, "input", "i", "", "input to simulate (default is the problem's default input)")
	traceCmd.Flags().StringVar(&traceFormat, "format", string(export.FormatText), "output format: text, json or yaml")
	traceCmd.Flags().IntVarP(&traceWidth, "width", "w", -1, "truncate text lines to this width; 0 disables, -1 uses the terminal width")
}

func runTrace(cmd *cobra.Command, args []string) error {
	p, err := algorithm.Lookup(algorithm.ID(args[0]))
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(traceFormat)
	if err != nil {
		return err
	}

	input := traceInput
	if input == "" {
		input = p.DefaultInput
	}
	cfg := config.Get()
	steps, err := p.Simulate(input, cfg.SimulateOptions())
	if err != nil {
		return errors.Wrapf(err, "simulate %s", p.ID)
	}

	doc := export.Document{
		Algorithm: string(p.ID),
		Input:     input,
		Steps:     steps,
		Source:    p.SourceLines(),
	}
	return export.Write(cmd.OutOrStdout(), doc, format, export.Options{Width: outputWidth(traceWidth)})
}

// outputWidth resolves the --width flag. A negative width means the width
// of the terminal on stdout, or no limit when stdout is not a terminal.
func outputWidth(flag int) int {
	if flag >= 0 {
		return flag
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	if w, _, err := term.GetSize(fd); err == nil {
		return w
	}
	return 0
}
