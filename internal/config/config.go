// Package config provides YAML-based configuration loading for the
// tetris binary.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Smallest board accepted by Validate.
const minBoardSize = 4

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Runtime RuntimeConfig `yaml:"runtime"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines how fast pieces fall on their own.
type GravityConfig struct {
	FallIntervalMS int `yaml:"fall_interval_ms"`
}

// RuntimeConfig defines frame pacing and randomness.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = time based
}

// LogConfig defines logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty = no in-game logging
}

// FallInterval returns the gravity interval as a duration.
func (c TetrisConfig) FallInterval() time.Duration {
	return time.Duration(c.Gravity.FallIntervalMS) * time.Millisecond
}

// LogLevel parses the configured log level.
func (c TetrisConfig) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}

// Validate checks that the configuration can start a game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < minBoardSize {
		return fmt.Errorf("config: board width %d is below %d", c.Board.Width, minBoardSize)
	}
	if c.Board.Height < minBoardSize {
		return fmt.Errorf("config: board height %d is below %d", c.Board.Height, minBoardSize)
	}
	if c.Gravity.FallIntervalMS <= 0 {
		return fmt.Errorf("config: fall interval must be positive, got %dms", c.Gravity.FallIntervalMS)
	}
	if c.Runtime.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d", c.Runtime.TickRate)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// RuntimeFor converts the settings into the runtime config a game is reset with.
// Screen size is taken from the terminal by the caller.
func (c TetrisConfig) RuntimeFor(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      screenW,
		ScreenH:      screenH,
		TickRate:     c.Runtime.TickRate,
		Seed:         c.Runtime.Seed,
		BoardW:       c.Board.Width,
		BoardH:       c.Board.Height,
		FallInterval: c.FallInterval(),
	}
}
