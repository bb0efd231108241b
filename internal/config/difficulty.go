package config

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampUnit(cfg.InitialLevel),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampUnit(level)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Interpolate from initial level to 1.0
	return d.initialLevel + clampUnit(progress)*(1.0-d.initialLevel)
}

// Speed scales baseSpeed from base to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// FireChance scales a per-tick probability the same way Speed scales speed.
// The result never exceeds 1.
func (d *DifficultyManager) FireChance(baseChance float64, score int, ticks int) float64 {
	return clampUnit(baseChance * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.FireMultiplier))
}

func clampUnit(v float64) float64 {
	return max(0.0, min(1.0, v))
}
