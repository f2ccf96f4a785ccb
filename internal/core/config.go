package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for coin phases; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Dt returns the simulated seconds covered by one tick.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the game's status as seen by the platform layer.
type GameState struct {
	Score      int    // Coins collected across the whole run
	Lives      int    // Attempts left before game over
	LevelIndex int    // Zero-based index into the pack
	LevelName  string // Name of the current level
	Won        bool   // Every level of the pack is cleared
	GameOver   bool   // The run has ended, won or lost
	Paused     bool   // Whether the game is paused
}

// Event is something noteworthy that happened during a tick.
type Event int

const (
	EventNone Event = iota
	EventCoin
	EventDied
	EventLevelCleared
	EventPackCleared
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventCoin:
		return "coin"
	case EventDied:
		return "died"
	case EventLevelCleared:
		return "level-cleared"
	case EventPackCleared:
		return "pack-cleared"
	case EventGameOver:
		return "game-over"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
