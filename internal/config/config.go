package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/Iron-Ham/stepthrough/internal/player"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// STEPTHROUGH_PLAYER_DEFAULT_SPEED=fast.
const EnvPrefix = "STEPTHROUGH"

// Config represents the complete stepthrough configuration
type Config struct {
	Player  PlayerConfig  `mapstructure:"player" yaml:"player"`
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	Queue   QueueConfig   `mapstructure:"queue" yaml:"queue"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// PlayerConfig controls auto-play
type PlayerConfig struct {
	// DefaultSpeed is the speed playback starts at: "slow", "normal" or "fast"
	DefaultSpeed string `mapstructure:"default_speed" yaml:"default_speed"`
	// SlowMs, NormalMs and FastMs are the tick periods in milliseconds
	SlowMs   int `mapstructure:"slow_ms" yaml:"slow_ms"`
	NormalMs int `mapstructure:"normal_ms" yaml:"normal_ms"`
	FastMs   int `mapstructure:"fast_ms" yaml:"fast_ms"`
}

// InputConfig controls input parsing
type InputConfig struct {
	// Strict rejects tokens that are not integers instead of dropping them
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// QueueConfig bounds the team-size search
type QueueConfig struct {
	// MaxIterations is how many candidates the search may examine
	MaxIterations int `mapstructure:"max_iterations" yaml:"max_iterations"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// DefaultAlgorithm is the problem shown when none is named on the command line
	DefaultAlgorithm string `mapstructure:"default_algorithm" yaml:"default_algorithm"`
	// Theme is the color theme (default: "default")
	// Options: "default", "monokai", "dracula", "nord", "mono"
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// Enabled writes a JSON log to the log directory
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is one of: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	iv := player.DefaultIntervals()
	return &Config{
		Player: PlayerConfig{
			DefaultSpeed: player.SpeedNormal.String(),
			SlowMs:       int(iv.Slow / time.Millisecond),
			NormalMs:     int(iv.Normal / time.Millisecond),
			FastMs:       int(iv.Fast / time.Millisecond),
		},
		Input: InputConfig{
			Strict: false,
		},
		Queue: QueueConfig{
			MaxIterations: algorithm.DefaultQueueMaxIterations,
		},
		TUI: TUIConfig{
			DefaultAlgorithm: string(algorithm.Water),
			Theme:            "default",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// Intervals returns the configured tick periods.
func (c *PlayerConfig) Intervals() player.Intervals {
	return player.Intervals{
		Slow:   time.Duration(c.SlowMs) * time.Millisecond,
		Normal: time.Duration(c.NormalMs) * time.Millisecond,
		Fast:   time.Duration(c.FastMs) * time.Millisecond,
	}
}

// Speed returns DefaultSpeed as a player.Speed, falling back to normal.
func (c *PlayerConfig) Speed() player.Speed {
	s, err := player.ParseSpeed(c.DefaultSpeed)
	if err != nil {
		return player.SpeedNormal
	}
	return s
}

// SimulateOptions returns the simulator options this config selects.
func (c *Config) SimulateOptions() algorithm.Options {
	return algorithm.Options{
		Strict:             c.Input.Strict,
		QueueMaxIterations: c.Queue.MaxIterations,
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("player.default_speed", defaults.Player.DefaultSpeed)
	viper.SetDefault("player.slow_ms", defaults.Player.SlowMs)
	viper.SetDefault("player.normal_ms", defaults.Player.NormalMs)
	viper.SetDefault("player.fast_ms", defaults.Player.FastMs)

	viper.SetDefault("input.strict", defaults.Input.Strict)

	viper.SetDefault("queue.max_iterations", defaults.Queue.MaxIterations)

	viper.SetDefault("tui.default_algorithm", defaults.TUI.DefaultAlgorithm)
	viper.SetDefault("tui.theme", defaults.TUI.Theme)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, or the defaults when the loaded
// configuration is invalid.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stepthrough")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stepthrough"
	}
	return filepath.Join(home, ".config", "stepthrough")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory the debug log is written to
func LogDir() string {
	return filepath.Join(ConfigDir(), "logs")
}
