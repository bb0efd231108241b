package invaders

import "github.com/vovakirdan/neon-arcade/internal/core"

// Ship is the player's cannon on the bottom row of the field.
type Ship struct {
	X        float64
	Y        int
	W        int
	Cooldown int // Ticks until the next shot is allowed
}

// Rect returns the ship's collision box.
func (s *Ship) Rect() core.Rect {
	return core.RectAt(s.X, float64(s.Y), s.W, 1)
}

// CenterX returns the muzzle column.
func (s *Ship) CenterX() float64 {
	return s.X + float64(s.W/2)
}

// Enemy is one member of a wave formation.
type Enemy struct {
	X, Y  float64
	W     int
	Row   int // Formation row, picks the sprite colour
	Alive bool
}

// Rect returns the enemy's collision box.
func (e *Enemy) Rect() core.Rect {
	return core.RectAt(e.X, e.Y, e.W, 1)
}

// Bullet is a single shot. Player bullets travel up, enemy bullets down.
type Bullet struct {
	X, Y  float64
	Speed float64
	Boss  bool // Fired by the boss
}

// Rect returns the bullet's collision box.
func (b *Bullet) Rect() core.Rect {
	return core.RectAt(b.X, b.Y, 1, 1)
}

// Boss is the single large enemy of every boss level.
type Boss struct {
	X        float64
	Y        int
	W, H     int
	HP       int
	MaxHP    int
	Dir      float64 // +1 right, -1 left
	Speed    float64
	Cooldown int // Ticks until the next shot
}

// Rect returns the boss's collision box.
func (b *Boss) Rect() core.Rect {
	return core.RectAt(b.X, float64(b.Y), b.W, b.H)
}

// Explosion is a short-lived render effect left by a hit.
type Explosion struct {
	X, Y int
	Life int
	Big  bool
}

const (
	explosionLife    = 20
	bigExplosionLife = 40
)
