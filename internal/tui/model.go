package tui

import (
	"sync"
	"time"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/logging"
	"github.com/Iron-Ham/stepthrough/internal/player"
	"github.com/Iron-Ham/stepthrough/internal/tui/keymap"
	tuimsg "github.com/Iron-Ham/stepthrough/internal/tui/msg"
	"github.com/Iron-Ham/stepthrough/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Config configures the TUI.
type Config struct {
	// Algorithm selects the problem shown first. Empty selects the first
	// problem in the catalog.
	Algorithm algorithm.ID
	// Input replaces the default input of the first problem when non-empty.
	Input string
	// InputFile is watched for changes; its contents replace the input of
	// the first problem. Used by App only.
	InputFile string

	Simulate  algorithm.Options
	// Speed is the initial playback speed. The zero value is SpeedSlow.
	Speed     player.Speed
	Intervals player.Intervals
	// Scheduler drives playback ticks; nil uses the wall clock.
	Scheduler player.Scheduler

	Styles *styles.Styles
	Keymap *keymap.Keymap
	Logger *logging.Logger
}

// stepFeed hands player changes to the event loop. The player may notify
// from inside Update, so push never blocks; only the newest view is kept.
type stepFeed struct {
	ch   chan player.View
	done chan struct{}
	once sync.Once
}

func newStepFeed() *stepFeed {
	return &stepFeed{
		ch:   make(chan player.View, 1),
		done: make(chan struct{}),
	}
}

func (f *stepFeed) push(v player.View) {
	for {
		select {
		case f.ch <- v:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

// wait returns a command that delivers the next pushed view as a StepMsg.
func (f *stepFeed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-f.done:
			return nil
		default:
		}
		select {
		case v := <-f.ch:
			return tuimsg.StepMsg{View: v}
		case <-f.done:
			return nil
		}
	}
}

func (f *stepFeed) close() {
	f.once.Do(func() { close(f.done) })
}

// Model is the Bubbletea model for the step-through screen.
type Model struct {
	problems []algorithm.Problem
	active   int
	// inputs holds the current input text per problem.
	inputs map[algorithm.ID]string
	// watched is the problem fed by the input file, if any.
	watched algorithm.ID
	opts    algorithm.Options

	player *player.Player
	feed   *stepFeed
	view   player.View
	err    error

	mode   keymap.Mode
	keys   *keymap.Keymap
	editor textinput.Model
	styles *styles.Styles
	logger *logging.Logger

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel builds the model and simulates the first problem.
func NewModel(cfg Config) Model {
	problems := algorithm.Catalog()
	active := max(algorithm.Index(cfg.Algorithm), 0)

	inputs := make(map[algorithm.ID]string, len(problems))
	for _, p := range problems {
		inputs[p.ID] = p.DefaultInput
	}
	if cfg.Input != "" {
		inputs[problems[active].ID] = cfg.Input
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	st := cfg.Styles
	if st == nil {
		st = styles.ForTheme(string(styles.ThemeDefault))
	}
	keys := cfg.Keymap
	if keys == nil {
		keys = keymap.DefaultKeymap()
	}

	feed := newStepFeed()
	popts := []player.Option{
		player.WithSpeed(cfg.Speed),
		player.WithLogger(logger),
		player.OnChange(feed.push),
	}
	if cfg.Intervals != (player.Intervals{}) {
		popts = append(popts, player.WithIntervals(cfg.Intervals))
	}
	if cfg.Scheduler != nil {
		popts = append(popts, player.WithScheduler(cfg.Scheduler))
	}

	editor := textinput.New()
	editor.Prompt = "> "
	editor.Placeholder = "integers separated by spaces"
	editor.CharLimit = 1024
	editor.Width = 40

	m := Model{
		problems: problems,
		active:   active,
		inputs:   inputs,
		opts:     cfg.Simulate,
		player:   player.New(popts...),
		feed:     feed,
		mode:     keymap.ModeNormal,
		keys:     keys,
		editor:   editor,
		styles:   st,
		logger:   logger.WithComponent("tui"),
	}
	if cfg.InputFile != "" {
		m.watched = problems[active].ID
	}
	m.rebuild()
	return m
}

// Init starts listening for player changes.
func (m Model) Init() tea.Cmd {
	return m.feed.wait()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.editor.Width = max(m.width-12, 10)
		return m, nil

	case tuimsg.StepMsg:
		// Later changes may already have happened; read the player again.
		m.view = m.player.Snapshot()
		return m, m.feed.wait()

	case tuimsg.InputReloadedMsg:
		m.reloadInput(msg.Text)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == keymap.ModeEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(key, m.mode)
	if !ok {
		if m.mode == keymap.ModeEdit {
			var c tea.Cmd
			m.editor, c = m.editor.Update(key)
			return m, c
		}
		return m, nil
	}

	var out tea.Cmd
	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		if m.mode == keymap.ModeHelp {
			m.mode = keymap.ModeNormal
		} else {
			m.mode = keymap.ModeHelp
		}

	case keymap.CmdStepForward:
		m.player.StepForward()
	case keymap.CmdStepBackward:
		m.player.StepBackward()
	case keymap.CmdTogglePlay:
		m.player.TogglePlay()
	case keymap.CmdReset:
		m.player.Reset()
	case keymap.CmdFirstStep:
		m.player.Seek(0)
	case keymap.CmdLastStep:
		m.player.Seek(m.player.Len() - 1)
	case keymap.CmdCycleSpeed:
		s := m.player.CycleSpeed()
		m.logger.Debug("speed changed", "speed", s.String())

	case keymap.CmdNextProblem:
		m.selectProblem(m.active + 1)
	case keymap.CmdPrevProblem:
		m.selectProblem(m.active - 1)

	case keymap.CmdEditInput:
		p := m.problems[m.active]
		if !p.TakesInput {
			break
		}
		m.player.Pause()
		m.mode = keymap.ModeEdit
		m.editor.SetValue(m.inputs[p.ID])
		m.editor.CursorEnd()
		out = m.editor.Focus()

	case keymap.CmdConfirm:
		m.inputs[m.problems[m.active].ID] = m.editor.Value()
		m.editor.Blur()
		m.mode = keymap.ModeNormal
		m.rebuild()

	case keymap.CmdCancel:
		m.editor.Blur()
		m.mode = keymap.ModeNormal
	}

	m.view = m.player.Snapshot()
	return m, out
}

// selectProblem switches to problem i, wrapping around the catalog.
func (m *Model) selectProblem(i int) {
	n := len(m.problems)
	m.active = (i%n + n) % n
	m.rebuild()
}

// reloadInput stores text read from the input file and rebuilds the trace
// when the watched problem is on screen.
func (m *Model) reloadInput(text string) {
	if m.watched == "" {
		return
	}
	m.inputs[m.watched] = text
	if m.problems[m.active].ID == m.watched {
		m.rebuild()
	}
}

// rebuild simulates the active problem on its current input and loads the
// result, discarding the old trace. On error the player is left empty.
func (m *Model) rebuild() {
	p := m.problems[m.active]
	log := m.logger.WithAlgorithm(string(p.ID))

	start := time.Now()
	steps, err := p.Simulate(m.inputs[p.ID], m.opts)
	m.err = err
	switch {
	case errors.IsInputError(err):
		log.Warn("input rejected", "error", err.Error(), "severity", errors.GetSeverity(err).String())
	case err != nil:
		log.Error("simulation failed", "error", err.Error(), "severity", errors.GetSeverity(err).String())
	default:
		log.Info("trace built", "steps", steps.Len(), "duration", time.Since(start).String())
	}

	m.player.Load(steps)
	m.view = m.player.Snapshot()
}

// Close stops playback and releases the step feed. It is safe to call more
// than once.
func (m Model) Close() {
	m.player.Close()
	m.feed.close()
}

// Active returns the problem on screen.
func (m Model) Active() algorithm.Problem {
	return m.problems[m.active]
}

// Input returns the current input text of the problem on screen.
func (m Model) Input() string {
	return m.inputs[m.problems[m.active].ID]
}

// Mode returns the current input mode.
func (m Model) Mode() keymap.Mode {
	return m.mode
}

// Snapshot returns the player state the model last rendered from.
func (m Model) Snapshot() player.View {
	return m.view
}

// Err returns the error from the last simulation.
func (m Model) Err() error {
	return m.err
}
