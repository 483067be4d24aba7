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

// TickTime converts a tick count into elapsed game time.
func (c RuntimeConfig) TickTime(tick int) time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(tick) * time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// MoveEvent reports a move detected for a player on one tick.
type MoveEvent struct {
	Player PlayerID      `json:"player"`
	Move   string        `json:"move"`
	Length int           `json:"length"`
	At     time.Duration `json:"at"`
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moves []MoveEvent // moves detected on this tick, in player order
}
