// Package registry keeps the catalogue of playable games.
// Each game package registers a factory from its init() function, so the
// platform can list and start games by ID without importing them directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for IDs that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a game and the platform.
// Games hold pure simulation state and never touch the terminal; the
// platform owns input decoding, timing and the final draw.
type Game interface {
	// ID is the stable key used by the CLI and the score store ("blocks", "invaders").
	ID() string

	// Title is the name shown in menus and listings.
	Title() string

	// Reset starts a fresh game with the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick after applying the frame's
	// actions in the order they were pressed.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns score, game-over and pause flags.
	State() core.GameState
}

// HighScoreAware is implemented by games that display the stored best score.
// The platform calls SetHighScore after Reset, before the first Step.
type HighScoreAware interface {
	SetHighScore(score int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, un-reset game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory under id.
// Panics on an empty id or a duplicate registration; both are programmer errors.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display title for id, or the id itself if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// ApplyHighScore hands best to g if the game displays a stored best score.
func ApplyHighScore(g Game, best int) {
	if h, ok := g.(HighScoreAware); ok {
		h.SetHighScore(best)
	}
}

// unregister removes id. Only used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
