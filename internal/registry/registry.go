// Package registry provides a registry of game factories.
// Game variants register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "blocks").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Describer is implemented by games that provide a one-line summary.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Registry maps game IDs to factories. The zero value is not usable;
// create one with New.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	infos     map[string]GameInfo
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		infos:     make(map[string]GameInfo),
	}
}

// Register adds a game factory.
// Panics if a game with the same ID is already registered.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Metadata comes from a throwaway instance.
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	r.factories[id] = f
	r.infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.infos))
	for _, info := range r.infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// Info returns metadata for a registered game.
func (r *Registry) Info(id string) (GameInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.infos[id]
	return info, ok
}

var defaultRegistry = New()

// Register adds a game factory to the default registry.
func Register(id string, f Factory) { defaultRegistry.Register(id, f) }

// List returns all games in the default registry.
func List() []GameInfo { return defaultRegistry.List() }

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) { return defaultRegistry.Create(id) }

// Exists checks the default registry for a game ID.
func Exists(id string) bool { return defaultRegistry.Exists(id) }

// Info returns metadata from the default registry.
func Info(id string) (GameInfo, bool) { return defaultRegistry.Info(id) }
