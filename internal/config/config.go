// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BlocksConfig contains all configuration for Neon Blocks.
type BlocksConfig struct {
	Board   BlocksBoard   `yaml:"board"`
	Gravity BlocksGravity `yaml:"gravity"`
	Scoring BlocksScoring `yaml:"scoring"`
}

// BlocksBoard defines the well dimensions in cells.
type BlocksBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksGravity defines the fall interval curve in milliseconds.
// interval = max(floor, base - (level-1)*step)
type BlocksGravity struct {
	BaseMS  int `yaml:"base_ms"`
	StepMS  int `yaml:"step_ms"`
	FloorMS int `yaml:"floor_ms"`
}

// BlocksScoring defines line-clear points and level pacing.
type BlocksScoring struct {
	LinePoints    int `yaml:"line_points"`     // First row of a landing; each further row doubles
	LinesPerLevel int `yaml:"lines_per_level"` // Lines needed per level
}

// Base returns the level 1 fall interval.
func (g BlocksGravity) Base() time.Duration { return time.Duration(g.BaseMS) * time.Millisecond }

// Step returns the per-level interval reduction.
func (g BlocksGravity) Step() time.Duration { return time.Duration(g.StepMS) * time.Millisecond }

// Floor returns the fastest allowed interval.
func (g BlocksGravity) Floor() time.Duration { return time.Duration(g.FloorMS) * time.Millisecond }

// Validate reports the first unusable value.
func (c BlocksConfig) Validate() error {
	switch {
	case c.Board.Width < 4 || c.Board.Height < 4:
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Gravity.BaseMS <= 0 || c.Gravity.FloorMS <= 0:
		return fmt.Errorf("%w: gravity base and floor must be positive", ErrInvalidConfig)
	case c.Gravity.StepMS < 0:
		return fmt.Errorf("%w: gravity step must not be negative", ErrInvalidConfig)
	case c.Scoring.LinePoints < 0:
		return fmt.Errorf("%w: line points must not be negative", ErrInvalidConfig)
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines per level must be positive", ErrInvalidConfig)
	}
	return nil
}

// InvadersConfig contains all configuration for both invaders variants.
// Distances are in cells, speeds in cells per tick.
type InvadersConfig struct {
	Field      InvadersField    `yaml:"field"`
	Player     InvadersPlayer   `yaml:"player"`
	Enemies    InvadersEnemies  `yaml:"enemies"`
	Boss       InvadersBoss     `yaml:"boss"`
	Classic    InvadersClassic  `yaml:"classic"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersField is the logical play area.
type InvadersField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InvadersPlayer defines the ship.
type InvadersPlayer struct {
	Width        int     `yaml:"width"`
	Step         float64 `yaml:"step"`          // Cells moved per key press
	FireCooldown int     `yaml:"fire_cooldown"` // Ticks between shots
	BulletSpeed  float64 `yaml:"bullet_speed"`
}

// InvadersEnemies defines the wave formation and its fire.
type InvadersEnemies struct {
	BaseRows            int     `yaml:"base_rows"`
	MaxExtraRows        int     `yaml:"max_extra_rows"`
	BaseCols            int     `yaml:"base_cols"`
	MaxExtraCols        int     `yaml:"max_extra_cols"`
	Width               int     `yaml:"width"`
	StartX              int     `yaml:"start_x"`
	StartY              int     `yaml:"start_y"`
	SpacingX            int     `yaml:"spacing_x"`
	SpacingY            int     `yaml:"spacing_y"`
	Speed               float64 `yaml:"speed"`
	SpeedPerLevel       float64 `yaml:"speed_per_level"`
	FireBase            float64 `yaml:"fire_base"`      // Per enemy, per tick
	FirePerLevel        float64 `yaml:"fire_per_level"` // Added per level
	BulletSpeed         float64 `yaml:"bullet_speed"`
	BulletSpeedPerLevel float64 `yaml:"bullet_speed_per_level"`
	Points              int     `yaml:"points"`
}

// InvadersBoss defines the boss that appears on every Nth level.
type InvadersBoss struct {
	Every         int     `yaml:"every"`
	BaseHP        int     `yaml:"base_hp"`
	HPPerLevel    int     `yaml:"hp_per_level"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Y             int     `yaml:"y"`
	Speed         float64 `yaml:"speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	FirstShot     int     `yaml:"first_shot"`    // Ticks before the first shot
	ShotCooldown  int     `yaml:"shot_cooldown"` // Ticks between later shots
	BulletSpeed   float64 `yaml:"bullet_speed"`
	Points        int     `yaml:"points"` // Per hit
}

// InvadersClassic defines the fixed formation of the classic variant.
type InvadersClassic struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	StartX      int     `yaml:"start_x"`
	StartY      int     `yaml:"start_y"`
	SpacingX    int     `yaml:"spacing_x"`
	SpacingY    int     `yaml:"spacing_y"`
	Speed       float64 `yaml:"speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	Points      int     `yaml:"points"`
}

// Validate reports the first unusable value.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Field.Width < 20 || c.Field.Height < 10:
		return fmt.Errorf("%w: field %dx%d is smaller than 20x10", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Width >= c.Field.Width:
		return fmt.Errorf("%w: ship width %d does not fit the field", ErrInvalidConfig, c.Player.Width)
	case c.Enemies.Width <= 0 || c.Enemies.SpacingX < c.Enemies.Width:
		return fmt.Errorf("%w: enemy spacing %d is narrower than enemy width %d", ErrInvalidConfig, c.Enemies.SpacingX, c.Enemies.Width)
	case c.Enemies.BaseRows <= 0 || c.Enemies.BaseCols <= 0:
		return fmt.Errorf("%w: formation needs at least one row and column", ErrInvalidConfig)
	case c.Boss.Every <= 0:
		return fmt.Errorf("%w: boss interval must be positive", ErrInvalidConfig)
	case c.Classic.Rows <= 0 || c.Classic.Cols <= 0:
		return fmt.Errorf("%w: classic formation needs at least one row and column", ErrInvalidConfig)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	FireMultiplier  float64 `yaml:"fire_multiplier"`  // Multiplier added to fire chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset.
// Unknown values yield the empty preset, meaning "use the config as is".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
