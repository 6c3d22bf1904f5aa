package msg

import "github.com/Iron-Ham/stepthrough/internal/player"

// StepMsg carries the player's state after a change made off the UI
// goroutine, such as a timer-driven advance.
type StepMsg struct {
	View player.View
}

// InputReloadedMsg carries new input text read from a watched file.
type InputReloadedMsg struct {
	Text string
}
