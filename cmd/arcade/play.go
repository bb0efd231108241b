package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Blocks controls:
  Left/Right, A/D  - Move piece
  Down/S           - Soft drop
  Up/W             - Rotate clockwise
  Z                - Rotate counter-clockwise
  Space            - Hard drop
  P                - Pause
  R                - Restart

Invaders controls:
  Left/Right, A/D  - Move ship
  Space/Up         - Fire
  Enter            - Start, next level, face the boss
  P                - Pause
  R                - Restart

Esc leaves a paused or finished game. Q/Ctrl+C quits.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play blocks
  arcade play invaders --difficulty hard
  arcade play invaders_classic
  arcade play blocks --config ./my-blocks.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	logger := tui.NewLogger("arcade")

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameID, err := prepareGame(gameID, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// User pressed back or quit in the selector
	if gameID == "" {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if the database is unavailable
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
