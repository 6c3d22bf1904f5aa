package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/Iron-Ham/stepthrough/internal/config"
	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/logging"
	"github.com/Iron-Ham/stepthrough/internal/player"
	"github.com/Iron-Ham/stepthrough/internal/tui"
	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [algorithm]",
	Short: "Open the interactive viewer",
	Long: `Open the interactive viewer on one of the catalog problems.

Without an argument the problem named by tui.default_algorithm is shown
first. Use tab and shift+tab to switch problems once running.

With --input-file the file's contents become the input of the first
problem, and saving the file rebuilds the trace.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

var (
	runInput     string
	runInputFile string
	runSpeed     string
)

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(c *cobra.Command) {
	c.Flags().StringVarP(&runInput, "input", "i", "", "input for the first problem (integers separated by spaces)")
	c.Flags().StringVarP(&runInputFile, "input-file", "f", "", "read the first problem's input from a file and reload it on change")
	c.Flags().StringVarP(&runSpeed, "speed", "s", "", "initial playback speed: slow, normal or fast (default from config)")
	c.MarkFlagsMutuallyExclusive("input", "input-file")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	tcfg, err := buildTUIConfig(cfg, args)
	if err != nil {
		return err
	}

	logger := createLogger(cfg)
	defer func() { _ = logger.Close() }()
	tcfg.Logger = logger

	logger.Info("starting", "algorithm", string(tcfg.Algorithm), "speed", tcfg.Speed.String())

	app, err := tui.New(tcfg)
	if err != nil {
		return errors.Wrap(err, "failed to start")
	}
	return errors.Wrap(app.Run(), "TUI error")
}

// buildTUIConfig combines the loaded configuration with command-line
// arguments. Flags win over configuration.
func buildTUIConfig(cfg *config.Config, args []string) (tui.Config, error) {
	id := algorithm.ID(cfg.TUI.DefaultAlgorithm)
	if len(args) > 0 {
		id = algorithm.ID(args[0])
	}
	if _, err := algorithm.Lookup(id); err != nil {
		return tui.Config{}, err
	}

	speed := cfg.Player.Speed()
	if runSpeed != "" {
		s, err := player.ParseSpeed(runSpeed)
		if err != nil {
			return tui.Config{}, err
		}
		speed = s
	}

	return tui.Config{
		Algorithm: id,
		Input:     runInput,
		InputFile: runInputFile,
		Simulate:  cfg.SimulateOptions(),
		Speed:     speed,
		Intervals: cfg.Player.Intervals(),
		Styles:    styles.ForTheme(cfg.TUI.Theme),
	}, nil
}

// createLogger creates a logger if logging is enabled in config.
// Returns a NopLogger if logging is disabled or if creation fails.
func createLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	logger, err := logging.NewLogger(config.LogDir(), cfg.Logging.Level)
	if err != nil {
		// Log creation failure shouldn't prevent the application from starting
		fmt.Fprintf(os.Stderr, "Warning: failed to create logger: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}
