// Package inputwatch reloads an input file when it changes on disk, so a
// trace can be rebuilt while the file is edited in another window.
package inputwatch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Iron-Ham/stepthrough/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle. Many editors produce several events for a single save.
const DefaultDebounce = 50 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// withDebounce overrides DefaultDebounce.
func withDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger for reload events and read failures.
func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// Watcher calls a function with the new contents of a file whenever the
// file changes. Contents identical to the last delivery are not repeated.
type Watcher struct {
	path     string
	onChange func(string)
	debounce time.Duration
	logger   *logging.Logger

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	last    string
	started bool
	stopped bool
}

// New creates a Watcher for path. It watches the containing directory so
// that editors that save by renaming a temporary file are still seen.
func New(path string, onChange func(string), opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   logging.NopLogger(),
		watcher:  fw,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logging.NopLogger()
	}
	w.logger = w.logger.WithComponent("inputwatch")
	return w, nil
}

// Read returns the file's current contents and records them as delivered,
// so the first change event after Read only fires if the file differs.
func (w *Watcher) Read() (string, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return "", err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = string(data)
	return w.last, nil
}

// Start begins delivering changes on a background goroutine. Call Read
// before Start if the initial contents are needed.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.stopped {
		return
	}
	w.started = true
	go w.loop()
}

// Stop ends the watch and waits for the background goroutine to exit.
// It is safe to call more than once, and before Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	started := w.started
	close(w.stopCh)
	_ = w.watcher.Close()
	w.mu.Unlock()

	if started {
		<-w.done
	}
}

func (w *Watcher) loop() {
	defer close(w.done)

	timer := time.NewTimer(0)
	<-timer.C
	pending := false

	for {
		select {
		case <-w.stopCh:
			timer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			timer.Reset(w.debounce)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "path", w.path, "error", err.Error())
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// A rename-based save can leave the file briefly missing; the
		// following Create event triggers another reload.
		w.logger.Debug("reload skipped", "path", w.path, "error", err.Error())
		return
	}
	text := string(data)
	w.mu.Lock()
	if text == w.last {
		w.mu.Unlock()
		return
	}
	w.last = text
	w.mu.Unlock()

	w.logger.Info("input reloaded", "path", w.path, "bytes", len(data))
	w.onChange(text)
}
