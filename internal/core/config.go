package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
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

// GameState is the host-facing summary of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the game
	Level    int  // Deepest level reached
	Playing  bool // A run is in progress (possibly paused)
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	NewBest  bool // The finished run set a new best score
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Event is something that happened during a tick that presentation may react to.
type Event int

const (
	EventNone Event = iota
	EventStart
	EventBounce
	EventPass
	EventPerfect
	EventGameOver
	EventNewBest
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventBounce:
		return "bounce"
	case EventPass:
		return "pass"
	case EventPerfect:
		return "perfect"
	case EventGameOver:
		return "game_over"
	case EventNewBest:
		return "new_best"
	default:
		return "none"
	}
}

// BestScoreStore is the durable home of a single best-score value.
// Implementations hide the storage mechanism from game logic; they never fail
// from the caller's point of view. Load returns 0 when nothing usable is stored.
type BestScoreStore interface {
	Load() int
	Save(score int)
}

// MemoryBestScore keeps the best score in process memory.
// Used when no database is available and in tests.
type MemoryBestScore struct {
	value int
}

// NewMemoryBestScore creates an in-memory store holding an initial value.
func NewMemoryBestScore(initial int) *MemoryBestScore {
	return &MemoryBestScore{value: initial}
}

// Load returns the stored value.
func (m *MemoryBestScore) Load() int {
	return m.value
}

// Save stores score if it beats the stored value.
func (m *MemoryBestScore) Save(score int) {
	if score > m.value {
		m.value = score
	}
}
