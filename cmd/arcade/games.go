package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/blocks"
	"github.com/vovakirdan/neon-arcade/internal/games/invaders"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
)

// prepareGame applies --config and --difficulty to gameID and runs its
// variant selector, if any. It returns the game ID to create, or "" when the
// player backed out of the selector.
func prepareGame(gameID string, cfg core.RuntimeConfig, logger *log.Logger) (string, error) {
	switch gameID {
	case "blocks":
		if flagConfig != "" {
			if _, err := config.LoadBlocks(flagConfig); err != nil {
				logger.Warn("custom config ignored, using defaults", "game", gameID, "error", err)
			}
		}
		blocks.SetConfigPath(flagConfig)
		blocks.SetDifficultyPreset(flagDifficulty)

	case "invaders", "invaders_classic":
		if flagConfig != "" {
			if _, err := config.LoadInvaders(flagConfig); err != nil {
				logger.Warn("custom config ignored, using defaults", "game", gameID, "error", err)
			}
		}
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(flagDifficulty)

		if gameID == "invaders" {
			return tui.RunInvadersModeSelector(cfg)
		}
	}

	return gameID, nil
}

// applyDifficulty sets the --difficulty preset on every game. The SSH server
// uses it since its sessions pick games without the CLI.
func applyDifficulty() {
	blocks.SetDifficultyPreset(flagDifficulty)
	invaders.SetDifficultyPreset(flagDifficulty)
}
