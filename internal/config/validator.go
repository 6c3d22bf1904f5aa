package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/Iron-Ham/stepthrough/internal/logging"
	"github.com/Iron-Ham/stepthrough/internal/player"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "player.fast_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Tick period bounds in milliseconds
const (
	minTickMs = 10
	maxTickMs = 60000
)

// maxQueueIterations keeps the team-size search from running unbounded
// when misconfigured
const maxQueueIterations = 1_000_000

// ValidLogLevels returns the list of valid log levels, the logger's level
// names in lower case.
func ValidLogLevels() []string {
	levels := logging.ValidLevels()
	for i, l := range levels {
		levels[i] = strings.ToLower(l)
	}
	return levels
}

// ValidThemes returns the list of valid theme names. These must match the
// built-in themes in tui/styles (defined separately to avoid an import of
// the TUI from config).
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord", "mono"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validatePlayer()...)
	errors = append(errors, c.validateQueue()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validatePlayer() []ValidationError {
	var errors []ValidationError

	if _, err := player.ParseSpeed(c.Player.DefaultSpeed); err != nil {
		errors = append(errors, ValidationError{
			Field:   "player.default_speed",
			Value:   c.Player.DefaultSpeed,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(player.SpeedNames(), ", ")),
		})
	}

	periods := []struct {
		field string
		ms    int
	}{
		{"player.slow_ms", c.Player.SlowMs},
		{"player.normal_ms", c.Player.NormalMs},
		{"player.fast_ms", c.Player.FastMs},
	}
	for _, p := range periods {
		if p.ms < minTickMs || p.ms > maxTickMs {
			errors = append(errors, ValidationError{
				Field:   p.field,
				Value:   p.ms,
				Message: fmt.Sprintf("must be between %d and %d", minTickMs, maxTickMs),
			})
		}
	}

	// Speeds are ordered; a "fast" slower than "slow" is a mistake.
	if c.Player.FastMs > c.Player.NormalMs || c.Player.NormalMs > c.Player.SlowMs {
		errors = append(errors, ValidationError{
			Field:   "player",
			Value:   fmt.Sprintf("slow=%d normal=%d fast=%d", c.Player.SlowMs, c.Player.NormalMs, c.Player.FastMs),
			Message: "tick periods must satisfy slow_ms >= normal_ms >= fast_ms",
		})
	}

	return errors
}

func (c *Config) validateQueue() []ValidationError {
	var errors []ValidationError

	if c.Queue.MaxIterations <= 0 {
		errors = append(errors, ValidationError{
			Field:   "queue.max_iterations",
			Value:   c.Queue.MaxIterations,
			Message: "must be positive",
		})
	}
	if c.Queue.MaxIterations > maxQueueIterations {
		errors = append(errors, ValidationError{
			Field:   "queue.max_iterations",
			Value:   c.Queue.MaxIterations,
			Message: fmt.Sprintf("exceeds maximum of %d", maxQueueIterations),
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.DefaultAlgorithm != "" {
		if _, err := algorithm.Lookup(algorithm.ID(c.TUI.DefaultAlgorithm)); err != nil {
			ids := make([]string, 0, len(algorithm.IDs()))
			for _, id := range algorithm.IDs() {
				ids = append(ids, string(id))
			}
			errors = append(errors, ValidationError{
				Field:   "tui.default_algorithm",
				Value:   c.TUI.DefaultAlgorithm,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ids, ", ")),
			})
		}
	}

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
