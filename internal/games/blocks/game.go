package blocks

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Game adapts Engine to the arcade platform.
type Game struct {
	engine   *Engine
	rules    Rules
	runtime  core.RuntimeConfig
	best     int    // Stored high score, shown in the HUD
	tick     uint64 // Steps since Reset
	tooSmall bool   // Set by Render; gravity waits while the window is too small
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// New creates a Neon Blocks game. Call Reset before use.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Blocks"
}

// Reset builds a fresh engine from the loaded config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	blocksCfg, err := config.LoadBlocks(configPath)
	if err != nil {
		blocksCfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&blocksCfg, difficultyPreset)
	}

	g.rules = RulesFromConfig(blocksCfg)
	g.engine = NewEngine(g.rules, rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.tooSmall = false
}

// SetHighScore records the best stored score for display.
func (g *Game) SetHighScore(score int) {
	g.best = score
}

// Step applies the frame's actions in the order they arrived, then advances
// gravity by one tick interval.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.apply(a)
	}

	if !g.tooSmall {
		g.engine.Tick(g.runtime.TickInterval())
	}
	g.tick++

	return core.StepResult{State: g.State()}
}

// apply maps one platform action to an engine command.
// While paused only pause and restart get through.
func (g *Game) apply(a core.Action) {
	if g.engine.State() == StatePaused && a != core.ActionPause && a != core.ActionRestart {
		return
	}

	switch a {
	case core.ActionLeft:
		g.engine.Apply(CmdMoveLeft)
	case core.ActionRight:
		g.engine.Apply(CmdMoveRight)
	case core.ActionDown:
		g.engine.Apply(CmdSoftDrop)
	case core.ActionUp:
		g.engine.Apply(CmdRotateCW)
	case core.ActionRotateCCW:
		g.engine.Apply(CmdRotateCCW)
	case core.ActionPrimary:
		g.engine.Apply(CmdHardDrop)
	case core.ActionPause:
		if g.engine.State() != StateGameOver {
			g.engine.Apply(CmdTogglePause)
		}
	case core.ActionRestart:
		g.engine.Apply(CmdReset)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.State() == StateGameOver,
		Paused:   g.engine.State() == StatePaused,
	}
}

// Snapshot returns the engine snapshot for tests and replays.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
