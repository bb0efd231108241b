package invaders

import "github.com/vovakirdan/neon-arcade/internal/config"

// newWave lays out the formation for a regular level.
// Each level adds a row and a column until the configured caps.
func newWave(cfg config.InvadersEnemies, level int) []Enemy {
	rows := cfg.BaseRows + min(level, cfg.MaxExtraRows)
	cols := cfg.BaseCols + min(level, cfg.MaxExtraCols)
	return grid(rows, cols, cfg.StartX, cfg.StartY, cfg.SpacingX, cfg.SpacingY, cfg.Width)
}

// newClassicWave lays out the fixed formation of the classic variant.
func newClassicWave(cfg config.InvadersClassic, enemyW int) []Enemy {
	return grid(cfg.Rows, cfg.Cols, cfg.StartX, cfg.StartY, cfg.SpacingX, cfg.SpacingY, enemyW)
}

func grid(rows, cols, x0, y0, dx, dy, w int) []Enemy {
	enemies := make([]Enemy, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			enemies = append(enemies, Enemy{
				X:     float64(x0 + c*dx),
				Y:     float64(y0 + r*dy),
				W:     w,
				Row:   r,
				Alive: true,
			})
		}
	}
	return enemies
}

// stepFormation shifts every living enemy sideways by speed in direction dir.
// When one of them touches a side wall the direction flips, and with descend
// set the whole formation drops one row. Reports whether a reversal happened.
func stepFormation(enemies []Enemy, dir *float64, speed float64, fieldW int, descend bool) bool {
	hitEdge := false
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}
		e.X += *dir * speed
		if e.X <= 0 || e.X+float64(e.W) >= float64(fieldW) {
			hitEdge = true
		}
	}
	if !hitEdge {
		return false
	}

	*dir = -*dir
	if descend {
		for i := range enemies {
			if enemies[i].Alive {
				enemies[i].Y++
			}
		}
	}
	return true
}

// aliveCount returns the number of enemies still standing.
func aliveCount(enemies []Enemy) int {
	n := 0
	for i := range enemies {
		if enemies[i].Alive {
			n++
		}
	}
	return n
}

// lowestRow returns the bottom edge of the living formation, or -1.
func lowestRow(enemies []Enemy) float64 {
	low := -1.0
	for i := range enemies {
		if enemies[i].Alive && enemies[i].Y+1 > low {
			low = enemies[i].Y + 1
		}
	}
	return low
}
