package config

import (
	"embed"
	"path"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultBlocksConfig returns the default Neon Blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BlocksBoard{
			Width:  12,
			Height: 20,
		},
		Gravity: BlocksGravity{
			BaseMS:  1000,
			StepMS:  80,
			FloorMS: 120,
		},
		Scoring: BlocksScoring{
			LinePoints:    100,
			LinesPerLevel: 10,
		},
	}
}

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: InvadersField{
			Width:  60,
			Height: 20,
		},
		Player: InvadersPlayer{
			Width:        5,
			Step:         2,
			FireCooldown: 12,
			BulletSpeed:  0.5,
		},
		Enemies: InvadersEnemies{
			BaseRows:            3,
			MaxExtraRows:        3,
			BaseCols:            6,
			MaxExtraCols:        4,
			Width:               3,
			StartX:              3,
			StartY:              2,
			SpacingX:            5,
			SpacingY:            2,
			Speed:               0.12,
			SpeedPerLevel:       0.03,
			FireBase:            0.002,
			FirePerLevel:        0.0005,
			BulletSpeed:         0.2,
			BulletSpeedPerLevel: 0.015,
			Points:              10,
		},
		Boss: InvadersBoss{
			Every:         3,
			BaseHP:        10,
			HPPerLevel:    5,
			Width:         16,
			Height:        2,
			Y:             3,
			Speed:         0.2,
			SpeedPerLevel: 0.05,
			FirstShot:     60,
			ShotCooldown:  40,
			BulletSpeed:   0.25,
			Points:        20,
		},
		Classic: InvadersClassic{
			Rows:        4,
			Cols:        8,
			StartX:      6,
			StartY:      2,
			SpacingX:    6,
			SpacingY:    2,
			Speed:       0.2,
			BulletSpeed: 0.5,
			Points:      10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				FireMultiplier:  1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", gameID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}
