package cmd

import (
	"fmt"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/spf13/cobra"
)

var sourceCmd = &cobra.Command{
	Use:   "source <algorithm>",
	Short: "Print the annotated source of a problem",
	Long: `Print the annotated source of a problem with line numbers.

The numbers are the line indices trace steps refer to.`,
	Args: cobra.ExactArgs(1),
	RunE: runSource,
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}

func runSource(cmd *cobra.Command, args []string) error {
	p, err := algorithm.Lookup(algorithm.ID(args[0]))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", p.Title)
	for i, line := range p.SourceLines() {
		fmt.Fprintf(out, "%3d  %s\n", i, line)
	}
	return nil
}
