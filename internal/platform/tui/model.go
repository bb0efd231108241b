package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// GameModel is the Bubble Tea model that runs a single game.
// Key presses queue up in arrival order and reach the game on the next tick.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string // SSH user name, empty for local play
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Back quits the program instead of returning to a session menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score of the current run has been recorded
}

// NewGameModel creates a model for game. Scores are attributed to player.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     newLogger(io.Discard, ""),
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithLogger returns a copy of the model that reports best-effort failures to l.
func (m GameModel) WithLogger(l *log.Logger) GameModel {
	m.logger = l
	return m
}

// Init resets the game, hands it the stored best score and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadHighScore()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games keep their state and show a notice while the window is too small
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in progress
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one simulation step with the queued input.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// A finished run restarts with a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.loadHighScore()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	if m.gameState.GameOver && !result.State.GameOver {
		// The game started a new run on its own (Enter in invaders)
		m.scoreSaved = false
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run. Failures are logged and otherwise ignored.
func (m GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	if _, err := m.store.SavePlayerScore(m.game.ID(), m.player, m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "player", m.player, "error", err)
		return
	}
	m.loadHighScore()
}

// loadHighScore hands the stored best score to games that display it.
func (m GameModel) loadHighScore() {
	if m.store == nil {
		return
	}

	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		return
	}
	registry.ApplyHighScore(m.game, best)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own Bubble Tea program until the player quits or
// goes back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg, "")
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
