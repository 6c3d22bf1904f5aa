// Package player moves a cursor over a trace.Trace and auto-advances it on a
// timer while playing.
//
// A Player owns at most one pending timer. Every operation that changes the
// trace, the play state, or the tick interval cancels that timer and bumps a
// generation counter, so a callback that was already in flight when it was
// cancelled sees a stale generation and does nothing.
package player

import (
	"sync"
	"time"

	"github.com/Iron-Ham/stepthrough/internal/logging"
	"github.com/Iron-Ham/stepthrough/internal/trace"
)

// Scheduler runs fn once after d. The returned stop function cancels the
// call if it has not started yet and reports whether it did so.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// View is a consistent snapshot of the player's derived state.
type View struct {
	Step    trace.Step
	Cursor  int
	Len     int
	Output  string
	Playing bool
	Speed   Speed
}

// AtEnd reports whether the cursor is on the last step.
func (v View) AtEnd() bool { return v.Len == 0 || v.Cursor == v.Len-1 }

// Option configures a Player.
type Option func(*Player)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(p *Player) { p.sched = s }
}

// WithIntervals sets the tick period for each speed.
func WithIntervals(iv Intervals) Option {
	return func(p *Player) { p.intervals = iv }
}

// WithSpeed sets the initial speed.
func WithSpeed(s Speed) Option {
	return func(p *Player) { p.speed = s }
}

// WithLogger sets the logger for playback events.
func WithLogger(l *logging.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// OnChange registers fn to receive a View after every state change,
// including timer-driven advances. fn runs without the player's lock held
// and may call back into the Player.
func OnChange(fn func(View)) Option {
	return func(p *Player) { p.onChange = fn }
}

// Player is a cursor over a trace with play/pause. It is safe for
// concurrent use.
type Player struct {
	mu        sync.Mutex
	steps     trace.Trace
	cursor    int
	playing   bool
	speed     Speed
	intervals Intervals

	sched Scheduler
	stop  func() bool
	gen   uint64

	closed   bool
	onChange func(View)
	logger   *logging.Logger
}

// New creates an idle Player with an empty trace.
func New(opts ...Option) *Player {
	p := &Player{
		speed:     SpeedNormal,
		intervals: DefaultIntervals(),
		sched:     timeScheduler{},
		logger:    logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.NopLogger()
	}
	p.logger = p.logger.WithComponent("player")
	return p
}

// Load replaces the trace, rewinds to the first step, and pauses.
func (p *Player) Load(t trace.Trace) {
	p.update(func() bool {
		p.steps = t
		p.cursor = 0
		p.playing = false
		p.logger.Debug("trace loaded", "steps", len(t))
		return true
	})
}

// StepForward moves to the next step. At the last step it only pauses.
func (p *Player) StepForward() {
	p.update(func() bool {
		if p.cursor >= len(p.steps)-1 {
			changed := p.playing
			p.playing = false
			return changed
		}
		p.cursor++
		return true
	})
}

// StepBackward moves to the previous step, if any.
func (p *Player) StepBackward() {
	p.update(func() bool {
		if p.cursor == 0 {
			return false
		}
		p.cursor--
		return true
	})
}

// Seek moves the cursor to i, clamped to the trace. Playback continues
// from the new position.
func (p *Player) Seek(i int) {
	p.update(func() bool {
		i = max(0, min(i, len(p.steps)-1))
		if i == p.cursor {
			return false
		}
		p.cursor = i
		if p.atEnd() {
			p.playing = false
		}
		return true
	})
}

// Reset rewinds to the first step and pauses.
func (p *Player) Reset() {
	p.update(func() bool {
		changed := p.cursor != 0 || p.playing
		p.cursor = 0
		p.playing = false
		return changed
	})
}

// Play starts auto-advance. It has no effect on an empty trace or at the
// last step.
func (p *Player) Play() {
	p.update(func() bool {
		if p.playing || p.atEnd() {
			return false
		}
		p.playing = true
		return true
	})
}

// Pause stops auto-advance.
func (p *Player) Pause() {
	p.update(func() bool {
		changed := p.playing
		p.playing = false
		return changed
	})
}

// TogglePlay flips between playing and paused.
func (p *Player) TogglePlay() {
	p.update(func() bool {
		if p.playing {
			p.playing = false
			return true
		}
		if p.atEnd() {
			return false
		}
		p.playing = true
		return true
	})
}

// SetSpeed changes the tick period. While playing, the pending tick is
// rescheduled with the new period.
func (p *Player) SetSpeed(s Speed) {
	p.update(func() bool {
		if s == p.speed {
			return false
		}
		p.speed = s
		return true
	})
}

// CycleSpeed advances to the next speed and returns it.
func (p *Player) CycleSpeed() Speed {
	var s Speed
	p.update(func() bool {
		p.speed = p.speed.Next()
		s = p.speed
		return true
	})
	return s
}

// Current returns the step under the cursor, or the placeholder step when
// the trace is empty.
func (p *Player) Current() trace.Step {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.steps.At(p.cursor)
}

// Output returns the console text accumulated up to the cursor.
func (p *Player) Output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.steps.OutputAt(p.cursor)
}

// Cursor returns the current index.
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Len returns the number of steps loaded.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.steps)
}

// Playing reports whether auto-advance is on.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Speed returns the current speed.
func (p *Player) Speed() Speed {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// Snapshot returns the current View.
func (p *Player) Snapshot() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewLocked()
}

// Close pauses the player and cancels any pending tick. A closed Player
// ignores further operations.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.closed = true
	p.cancelLocked()
}

func (p *Player) atEnd() bool {
	return len(p.steps) == 0 || p.cursor >= len(p.steps)-1
}

func (p *Player) viewLocked() View {
	return View{
		Step:    p.steps.At(p.cursor),
		Cursor:  p.cursor,
		Len:     len(p.steps),
		Output:  p.steps.OutputAt(p.cursor),
		Playing: p.playing,
		Speed:   p.speed,
	}
}

// update applies mutate under the lock, re-arms the timer, and notifies
// the change callback when mutate reports a change.
func (p *Player) update(mutate func() bool) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	changed := mutate()
	if changed {
		p.rearmLocked()
	}
	v := p.viewLocked()
	notify := p.onChange
	p.mu.Unlock()

	if changed && notify != nil {
		notify(v)
	}
}

func (p *Player) cancelLocked() {
	p.gen++
	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
}

// rearmLocked replaces any pending tick with a fresh one when playing.
func (p *Player) rearmLocked() {
	p.cancelLocked()
	if !p.playing {
		return
	}
	gen := p.gen
	p.stop = p.sched.AfterFunc(p.intervals.For(p.speed), func() { p.tick(gen) })
}

func (p *Player) tick(gen uint64) {
	p.mu.Lock()
	if p.closed || gen != p.gen || !p.playing {
		p.mu.Unlock()
		return
	}
	p.stop = nil
	if p.cursor < len(p.steps)-1 {
		p.cursor++
	}
	if p.atEnd() {
		p.playing = false
		p.logger.Debug("playback reached end", "cursor", p.cursor)
	}
	p.rearmLocked()
	v := p.viewLocked()
	notify := p.onChange
	p.mu.Unlock()

	if notify != nil {
		notify(v)
	}
}
