// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/course-arcade/internal/core"
)

// ErrUnknownGame is returned when no game is registered under an ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "sprites", "pong").
	// Used for CLI commands, config file names and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds the whole game state from its loaded configuration.
	// Called once at start and again whenever the player restarts.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds of real time.
	// Input is abstracted to platform-level actions.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Scene describes the current frame in world coordinates.
	Scene() core.Scene

	// State returns the current game state (score, status, paused).
	State() core.GameState
}

// Options carries the user's CLI choices to a game before it loads.
type Options struct {
	ConfigPath string // Custom YAML path; empty means the default search chain
	Difficulty string // Preset name: easy, normal, hard, fixed; empty for config as-is
	AssetDir   string // Directory searched for textures before the embedded set
}

// Configurable is implemented by games that accept Options.
type Configurable interface {
	Configure(opts Options)
}

// Loader is implemented by games that read configuration or assets once
// before the first Reset. A Load error is fatal for the session.
type Loader interface {
	Load() error
}

// Reloader is implemented by games that can re-read their configuration
// while running. The platform calls Reset after a successful Reload.
type Reloader interface {
	Reload() error
}

// Describer is implemented by games that name the course lesson they
// come from.
type Describer interface {
	Lesson() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Lesson string // Empty unless the game implements Describer
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
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

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Lesson = d.Lesson()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error wrapping ErrUnknownGame if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Prepare creates a game, hands it the options and loads it.
// The returned game still needs Reset before the first Step.
func Prepare(id string, opts Options) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}

	if c, ok := g.(Configurable); ok {
		c.Configure(opts)
	}

	if l, ok := g.(Loader); ok {
		if err := l.Load(); err != nil {
			return nil, fmt.Errorf("registry: load %s: %w", id, err)
		}
	}

	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
