package invaders

import (
	"fmt"
	"hash/fnv"
)

// Snapshot is a read-only summary of the game for tests and replays.
type Snapshot struct {
	Mode         Mode
	State        string
	Paused       bool
	Tick         int
	Level        int
	Score        int
	ShipX        float64
	Cooldown     int
	EnemiesAlive int
	Direction    float64
	BossHP       int // 0 when no boss is on the field
	Bullets      int
	EnemyBullets int
	Explosions   int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:         g.mode,
		State:        g.state,
		Paused:       g.paused,
		Tick:         g.tick,
		Level:        g.level,
		Score:        g.score,
		ShipX:        g.ship.X,
		Cooldown:     g.ship.Cooldown,
		EnemiesAlive: aliveCount(g.enemies),
		Direction:    g.dir,
		Bullets:      len(g.bullets),
		EnemyBullets: len(g.enemyBullets),
		Explosions:   len(g.explosions),
	}
	if g.boss != nil {
		snap.BossHP = g.boss.HP
	}
	return snap
}

// Hash fingerprints the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%+v", s)
	return h.Sum64()
}
