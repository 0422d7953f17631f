// Package config loads the aoc command's YAML settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration of the aoc command.
type Config struct {
	// Directory holding dayNN.txt puzzle inputs.
	InputDir string `yaml:"input_dir"`

	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`

	// Maximum number of days solved at once by "aoc all" (0 = one per CPU).
	Parallel int `yaml:"parallel"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// SearchConfig bounds the state-space searches run by the solvers.
type SearchConfig struct {
	// Expansion cutoff per search (0 = unlimited).
	Limit int `yaml:"limit"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		InputDir: "inputs",
		Log:      LogConfig{Level: "info"},
		Parallel: 4,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and the log level name.
func (c Config) Validate() error {
	if c.Parallel < 0 {
		return fmt.Errorf("%w: parallel must be >= 0, got %d", ErrInvalidConfig, c.Parallel)
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("%w: search.limit must be >= 0, got %d", ErrInvalidConfig, c.Search.Limit)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ZapLevel parses Level; an empty level means info.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(l.Level)
}

// InputPath is the conventional input file for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}
