package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, FireMultiplier: 2.0},
	}

	tests := []struct {
		name    string
		initial float64
		score   int
		want    float64
	}{
		{"start", 0, 0, 0},
		{"halfway", 0, 50, 0.5},
		{"capped", 0, 500, 1},
		{"from normal", 0.3, 50, 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(cfg)
			d.SetInitialLevel(tt.initial)
			if got := d.Level(tt.score, 0); !approx(got, tt.want) {
				t.Errorf("Level() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(0, 1000); !approx(got, 0.4) {
		t.Errorf("disabled Level() = %v, expected the initial 0.4", got)
	}
}

func TestDifficultySpeedAndFire(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, FireMultiplier: 1.0},
	})

	if got := d.Speed(2.0, 0, 100); !approx(got, 3.0) {
		t.Errorf("Speed at max = %v, expected 3.0", got)
	}
	if got := d.FireChance(0.01, 0, 100); !approx(got, 0.02) {
		t.Errorf("FireChance at max = %v, expected 0.02", got)
	}
	if got := d.FireChance(0.9, 0, 100); got != 1.0 {
		t.Errorf("FireChance should cap at 1, got %v", got)
	}
}
