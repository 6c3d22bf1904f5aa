package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/Iron-Ham/stepthrough/internal/player"
	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Player.DefaultSpeed != "normal" {
		t.Errorf("Player.DefaultSpeed = %q, want %q", cfg.Player.DefaultSpeed, "normal")
	}
	if cfg.Player.SlowMs != 1000 || cfg.Player.NormalMs != 500 || cfg.Player.FastMs != 100 {
		t.Errorf("Player periods = %d/%d/%d, want 1000/500/100",
			cfg.Player.SlowMs, cfg.Player.NormalMs, cfg.Player.FastMs)
	}
	if cfg.Input.Strict {
		t.Error("Input.Strict should be false by default")
	}
	if cfg.Queue.MaxIterations != 1000 {
		t.Errorf("Queue.MaxIterations = %d, want 1000", cfg.Queue.MaxIterations)
	}
	if cfg.TUI.DefaultAlgorithm != "water" {
		t.Errorf("TUI.DefaultAlgorithm = %q, want %q", cfg.TUI.DefaultAlgorithm, "water")
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "info" {
		t.Errorf("Logging = %+v, want enabled at info", cfg.Logging)
	}
}

func TestPlayerConfig_Intervals(t *testing.T) {
	cfg := PlayerConfig{SlowMs: 2000, NormalMs: 250, FastMs: 50}
	iv := cfg.Intervals()
	if iv.Slow != 2*time.Second || iv.Normal != 250*time.Millisecond || iv.Fast != 50*time.Millisecond {
		t.Errorf("Intervals() = %+v", iv)
	}

	if got := Default().Player.Intervals(); got != player.DefaultIntervals() {
		t.Errorf("default Intervals() = %+v, want %+v", got, player.DefaultIntervals())
	}
}

func TestPlayerConfig_Speed(t *testing.T) {
	tests := []struct {
		in   string
		want player.Speed
	}{
		{"slow", player.SpeedSlow},
		{"fast", player.SpeedFast},
		{"bogus", player.SpeedNormal},
	}
	for _, tt := range tests {
		cfg := PlayerConfig{DefaultSpeed: tt.in}
		if got := cfg.Speed(); got != tt.want {
			t.Errorf("Speed() for %q = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfig_SimulateOptions(t *testing.T) {
	cfg := Default()
	cfg.Input.Strict = true
	cfg.Queue.MaxIterations = 42

	want := algorithm.Options{Strict: true, QueueMaxIterations: 42}
	if got := cfg.SimulateOptions(); got != want {
		t.Errorf("SimulateOptions() = %+v, want %+v", got, want)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got, want := ConfigDir(), "/custom/config/stepthrough"; got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		if got, want := ConfigDir(), filepath.Join(home, ".config", "stepthrough"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got, want := ConfigFile(), "/custom/config/stepthrough/config.yaml"; got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
	if got, want := LogDir(), "/custom/config/stepthrough/logs"; got != want {
		t.Errorf("LogDir() = %q, want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if *cfg != *Default() {
			t.Errorf("Load() = %+v, want defaults", cfg)
		}
	})

	t.Run("reads yaml file", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "player:\n  default_speed: fast\n  fast_ms: 50\nqueue:\n  max_iterations: 20\ntui:\n  default_algorithm: poker\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			t.Fatalf("ReadInConfig() error = %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Player.Speed() != player.SpeedFast || cfg.Player.FastMs != 50 {
			t.Errorf("Player = %+v", cfg.Player)
		}
		if cfg.Player.SlowMs != 1000 {
			t.Errorf("unset field should keep default, got SlowMs = %d", cfg.Player.SlowMs)
		}
		if cfg.Queue.MaxIterations != 20 || cfg.TUI.DefaultAlgorithm != "poker" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("queue.max_iterations", 0)
		viper.Set("tui.theme", "neon")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() should reject invalid config")
		}
		verrs, ok := err.(ValidationErrors)
		if !ok {
			t.Fatalf("error type = %T, want ValidationErrors", err)
		}
		if len(verrs) != 2 {
			t.Errorf("got %d validation errors, want 2: %v", len(verrs), verrs)
		}

		if cfg := Get(); *cfg != *Default() {
			t.Errorf("Get() should fall back to defaults, got %+v", cfg)
		}
	})
}
