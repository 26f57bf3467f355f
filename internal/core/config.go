package core

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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue is a notable moment inside a tick that the platform may react to
// (sound, logging). Cues never feed back into the simulation.
type Cue uint8

const (
	CueJump Cue = iota + 1
	CueLand
	CueRetire
	CueRoundStart
	CueGameOver
	CueHighScore
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueLand:
		return "land"
	case CueRetire:
		return "retire"
	case CueRoundStart:
		return "round_start"
	case CueGameOver:
		return "game_over"
	case CueHighScore:
		return "high_score"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// Has reports whether the tick produced the given cue.
func (r StepResult) Has(c Cue) bool {
	for _, x := range r.Cues {
		if x == c {
			return true
		}
	}
	return false
}
