package cmd

import (
	"fmt"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List the catalog problems",
	Long: `List the catalog problems with their default input.

An optional glob pattern filters by problem ID, e.g.:
  stepthrough list 'b*'
  stepthrough list '{water,queue}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	problems, err := filterProblems(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(problems) == 0 {
		fmt.Fprintln(out, "No problems match.")
		return nil
	}
	for _, p := range problems {
		input := p.DefaultInput
		if !p.TakesInput {
			input = "(fixed instance)"
		}
		fmt.Fprintf(out, "%-14s %-24s %s\n", p.ID, p.Title, input)
	}
	return nil
}

// filterProblems returns the catalog entries whose ID matches the optional
// glob pattern in args.
func filterProblems(args []string) ([]algorithm.Problem, error) {
	problems := algorithm.Catalog()
	if len(args) == 0 {
		return problems, nil
	}

	g, err := glob.Compile(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", args[0], err)
	}
	var out []algorithm.Problem
	for _, p := range problems {
		if g.Match(string(p.ID)) {
			out = append(out, p)
		}
	}
	return out, nil
}
