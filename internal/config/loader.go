package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadBlocks loads Neon Blocks configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
func LoadBlocks(customPath string) (BlocksConfig, error) {
	return load("blocks", customPath, DefaultBlocksConfig)
}

// LoadInvaders loads invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders", customPath, DefaultInvadersConfig)
}

// load resolves a game config. Every source is decoded on top of the Go
// defaults, so a file only needs the keys it wants to change.
// A custom path is authoritative: read, parse and validation errors are returned.
// Broken files in the search directories are skipped.
func load[T validator](gameID, customPath string, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	for _, p := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if p == "" {
			continue
		}
		if cfg, ok := decodeFile(p, defaults); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil || cfg.Validate() != nil {
			return defaults(), nil // Fallback to hardcoded if embed is broken
		}
	}
	return cfg, nil
}

func decodeFile[T validator](p string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBlocksPreset adjusts the gravity curve for a difficulty preset.
// Presets never touch scoring.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.StepMS = cfg.Gravity.StepMS / 2
		cfg.Gravity.FloorMS = max(cfg.Gravity.FloorMS, 250)
	case DifficultyHard:
		cfg.Gravity.BaseMS = cfg.Gravity.BaseMS * 4 / 5
		cfg.Gravity.FloorMS = max(1, cfg.Gravity.FloorMS*5/6)
	case DifficultyFixed:
		cfg.Gravity.StepMS = 0
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.FireCooldown = cfg.Player.FireCooldown * 3 / 4
		cfg.Enemies.FireBase = cfg.Enemies.FireBase / 2
	case DifficultyHard:
		cfg.Player.FireCooldown = cfg.Player.FireCooldown * 3 / 2
		cfg.Boss.BaseHP = cfg.Boss.BaseHP * 3 / 2
	}
}
