package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Tick rate bounds in ticks per second.
const (
	DefaultTickRate = 30
	MaxTickRate     = 240
)

// TickDuration returns the time covered by one tick. Non-positive rates
// use DefaultTickRate; faster rates are capped at MaxTickRate.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(min(rate, MaxTickRate))
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Result describes a finished puzzle: a solved Sokoban level or a
// cleared Minesweeper board. Unlike scores, results rank by effort.
type Result struct {
	GameID  string
	Variant string // Level set name or board preset
	Level   int    // 1-based level number, 0 when not applicable
	Name    string // Level display name
	Moves   int
	Pushes  int
	Elapsed time.Duration
}
