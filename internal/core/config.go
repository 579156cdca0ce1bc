package core

// Surface identifies the kind of drawing target a host provides.
// Games use it to pick their pixel scale.
type Surface int

const (
	SurfaceTerminal Surface = iota // half-block cells, two pixels per row
	SurfaceWindow                  // native window
)

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int     // Surface width in pixels
	ScreenH  int     // Surface height in pixels
	TickRate int     // Frames per second requested from the host (default 60)
	Seed     int64   // RNG seed for deterministic simulation
	SeedText string  // World seed text, hashed by games that generate terrain
	Surface  Surface // Drawing target kind
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  160,
		ScreenH:  96,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Status is the run state a game reports to its host.
type Status int

const (
	StatusIdle    Status = iota // waiting for Start
	StatusRunning               // simulating
	StatusEnded                 // stopped by the host or player
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int    // Current score
	Status Status // Run state
	Paused bool   // Whether the simulation is frozen
	Hint   string // One-line message for the host's status bar
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
