package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the board, pace gravity and seed the RNG.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickRate     int           // UI frames per second (default 60)
	Seed         int64         // RNG seed for deterministic gameplay
	BoardW       int           // Board width in cells
	BoardH       int           // Board height in cells
	FallInterval time.Duration // Time between gravity steps
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		Seed:         0, // 0 means use current time in platform layer
		BoardW:       10,
		BoardH:       20,
		FallInterval: 500 * time.Millisecond,
	}
}

// FrameDuration returns the wall time covered by one Step call.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State   GameState
	Locked  bool // A piece was frozen into the board this frame
	Cleared int  // Rows cleared by that freeze
}
