package core

import "github.com/vovakirdan/parkour-run/internal/config"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to the player's settings.
type RuntimeConfig struct {
	ScreenW  int             // Screen width in characters
	ScreenH  int             // Screen height in characters
	TickRate int             // Simulation ticks per second (default 60)
	Seed     int64           // Backdrop scatter seed, 0 = course default
	Settings config.Settings // Theme, difficulty, camera and character choices
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Settings: config.DefaultSettings(),
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int  // Current score
	Stage         int  // Current stage, starting at 1
	GameOver      bool // Whether the run has ended
	Paused        bool // Whether the game is paused
	StageComplete bool // Finish reached, waiting for next stage or restart
}

// PlayerStats is the per-tick telemetry snapshot handed to the HUD.
type PlayerStats struct {
	Speed             float64 // Momentum in m/s
	Time              float64 // Elapsed run time in seconds
	Combo             int
	Score             int
	SuperJumpReady    bool
	SuperJumpCooldown float64 // Seconds until the super jump recharges
	JumpsRemaining    int
	Stage             int
}

// EventKind identifies an outbound simulation event.
type EventKind int

const (
	EventNone EventKind = iota
	EventLanded
	EventJumped
	EventSuperJumped
	EventRecovered
	EventStageComplete
	EventCourseRebuilt
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventJumped:
		return "jumped"
	case EventSuperJumped:
		return "super_jumped"
	case EventRecovered:
		return "recovered"
	case EventStageComplete:
		return "stage_complete"
	case EventCourseRebuilt:
		return "course_rebuilt"
	default:
		return "none"
	}
}

// Event is a message pushed by the simulation for the host to consume once
// per frame. The simulation never calls back into host state.
type Event struct {
	Kind  EventKind
	Time  float64 // Run time when the event happened
	Value int     // Kind-specific payload: jump charge, combo, generation
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Stats  PlayerStats
	Events []Event
}
