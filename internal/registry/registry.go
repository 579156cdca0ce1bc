// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/storage"
)

// Game is the core interface that all sandpit games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "sandbox").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides surface dimensions and seeds.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame of dt seconds.
	// Input is abstracted to platform-level actions and a pointer.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current frame into the pixel buffer.
	// The buffer has the surface size given to Reset or Resize.
	Render(dst *core.PixelBuffer)

	// State returns the current game state.
	State() core.GameState
}

// Controller is implemented by games with an explicit run lifecycle.
type Controller interface {
	Start()
	Stop()
}

// Resizer is implemented by games that adapt to surface size changes.
type Resizer interface {
	Resize(w, h int)
}

// Sizer is implemented by games that prefer a particular surface size.
type Sizer interface {
	PreferredSize(s core.Surface) (w, h int)
}

// Persistent is implemented by games that keep state between sessions.
// The host hands over its store before Reset.
type Persistent interface {
	UseStore(kv storage.KV, logger *log.Logger)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Prepare creates a game, hands it the store when it persists state and
// resets it with cfg. kv and logger may be nil.
func Prepare(id string, cfg core.RuntimeConfig, kv storage.KV, logger *log.Logger) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if p, ok := g.(Persistent); ok && kv != nil {
		p.UseStore(kv, logger)
	}
	g.Reset(cfg)
	return g, nil
}
