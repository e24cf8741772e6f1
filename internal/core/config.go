package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Realtime bool  // Derive dt from a monotonic clock instead of 1/TickRate
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

// Aspect returns the screen aspect ratio used for the projection matrix.
// Terminal cells are roughly twice as tall as they are wide.
func (c RuntimeConfig) Aspect() float32 {
	if c.ScreenH <= 0 {
		return 1
	}
	return float32(c.ScreenW) / float32(c.ScreenH*2)
}

// Phase is the coarse state of a run.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the wire name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score (distance, floored)
	Phase    Phase // Menu, Playing or GameOver
	GameOver bool  // Whether the run has ended
	Paused   bool  // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Collided is true on the frame the run ended by hitting an obstacle.
	Collided bool
	// HitKind names the obstacle kind that ended the run, if any.
	HitKind string
	// Started is true on the frame a new run began.
	Started bool
}
