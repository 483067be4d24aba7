// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-combos/internal/config"
	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/moves"
)

// Game is the core interface that all combo games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "trainer", "duel").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Move Trainer").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Returns the result of this tick including moves detected on it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// MultiPlayerGame is implemented by games driven by more than one local
// player. The platform calls StepMulti instead of Step for these.
type MultiPlayerGame interface {
	Game
	StepMulti(in core.MultiInputFrame) core.StepResult
}

// Loadout is the move catalog and timing handed to every game instance.
// The MoveList is shared read-only between games and players.
type Loadout struct {
	Moves       *moves.MoveList
	Timing      moves.Timing
	MoveTimeout time.Duration
	Trial       config.TrialConfig
}

// Configurable is implemented by games that accept a Loadout.
type Configurable interface {
	Configure(lo Loadout)
}

// DefaultLoadout builds the loadout from the hardcoded default configs.
func DefaultLoadout() Loadout {
	mc := config.DefaultMovesConfig()
	list, timing, err := mc.Build()
	if err != nil {
		panic(fmt.Sprintf("registry: default move catalog: %v", err))
	}
	return Loadout{
		Moves:       list,
		Timing:      timing,
		MoveTimeout: mc.MoveTimeout(),
		Trial:       config.DefaultTrialConfig(),
	}
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Players int
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

	// Get metadata by creating a temporary instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title(), Players: 1}
	if _, ok := g.(MultiPlayerGame); ok {
		info.Players = 2
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

// CreateWith instantiates a game and hands it the loadout when it accepts one.
func CreateWith(id string, lo Loadout) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		c.Configure(lo)
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
