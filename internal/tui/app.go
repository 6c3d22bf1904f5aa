// Package tui runs the interactive step-through screen: problem tabs, the
// annotated source with the current line marked, the variable snapshot,
// highlighted input cells, and the accumulated console output.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/inputwatch"
	"github.com/Iron-Ham/stepthrough/internal/logging"
	tuimsg "github.com/Iron-Ham/stepthrough/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	watcher *inputwatch.Watcher
}

// New creates the TUI application. When cfg.InputFile is set its contents
// become the first problem's input and later edits to it rebuild the trace.
func New(cfg Config) (*App, error) {
	a := &App{}
	if cfg.Logger == nil {
		cfg.Logger = logging.NopLogger()
	}

	if cfg.InputFile != "" {
		w, err := inputwatch.New(cfg.InputFile, a.inputReloaded, inputwatch.WithLogger(cfg.Logger))
		if err != nil {
			return nil, err
		}
		text, err := w.Read()
		if err != nil {
			w.Stop()
			return nil, errors.Wrap(err, "read input file")
		}
		cfg.Input = text
		a.watcher = w
	}

	a.model = NewModel(cfg)
	return a, nil
}

func (a *App) inputReloaded(text string) {
	a.program.Send(tuimsg.InputReloadedMsg{Text: text})
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	defer a.model.Close()

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Closing the terminal window should exit cleanly too.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		if _, ok := <-sigChan; ok {
			a.program.Send(tea.Quit())
		}
	}()

	// The program exists now, so reloads have somewhere to go.
	if a.watcher != nil {
		a.watcher.Start()
		defer a.watcher.Stop()
	}

	_, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)
	return err
}
