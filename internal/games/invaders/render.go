package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const (
	hudHeight = 2
	starCount = 14
)

// Sprite glyphs
const (
	PlayerShot = '┃'
	EnemyShot  = '¦'
	BossShot   = '▼'
	StarChar   = '.'
)

// rowColors tints formation rows from the top down.
var rowColors = []core.Color{
	core.ColorRose,
	core.ColorGold,
	core.ColorAqua,
	core.ColorMint,
	core.ColorLavender,
	core.ColorPink,
}

// Render draws the HUD, the field and the overlay of the current state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.rng == nil {
		return
	}

	g.renderHUD(dst)

	boxW, boxH := g.cfg.Field.Width+2, g.cfg.Field.Height+2
	g.tooSmall = dst.Width() < boxW || dst.Height() < boxH+hudHeight
	if g.tooSmall {
		renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()),
			"Window too small", fmt.Sprintf("Need %dx%d", boxW, boxH+hudHeight))
		return
	}

	box := core.NewRect((dst.Width()-boxW)/2, hudHeight, boxW, boxH)
	dst.DrawBoxColored(box, core.ColorViolet)

	// Field origin inside the border
	ox, oy := box.X+1, box.Y+1

	g.renderStars(dst, ox, oy)
	g.renderEnemies(dst, ox, oy)
	g.renderBoss(dst, ox, oy)
	g.renderBullets(dst, ox, oy)
	if g.state != StateGameOver {
		g.renderShip(dst, ox, oy)
	}
	g.renderExplosions(dst, ox, oy)

	switch {
	case g.paused:
		renderOverlay(dst, box, "Paused", "Press P to continue")
	case g.state == StateMenu:
		renderOverlay(dst, box, "Juan Claudio's Revenge", "Press ENTER to begin")
	case g.state == StateGameOver:
		renderOverlay(dst, box, "Game Over", "Press ENTER to try again")
	case g.state == StateLevelComplete && g.bossDefeated:
		renderOverlay(dst, box, "Boss Defeated!", "Press ENTER for the next level")
	case g.state == StateLevelComplete:
		renderOverlay(dst, box, "Wave Cleared!", "Press ENTER for the next level")
	case g.state == StateBossIntro:
		renderOverlay(dst, box, "Boss Incoming", "Press ENTER to face your nemesis")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeClassic {
		hud = fmt.Sprintf(" %s | Score: %d  Left: %d  Best: %d",
			g.Title(), g.score, aliveCount(g.enemies), g.best)
	} else {
		hud = fmt.Sprintf(" %s | Score: %d  Level: %d  Best: %d",
			g.Title(), g.score, g.level, g.best)
		if g.boss != nil {
			hud += fmt.Sprintf("  Boss: %d/%d", g.boss.HP, g.boss.MaxHP)
		}
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderStars scrolls a sparse star field sideways behind everything else.
func (g *Game) renderStars(dst *core.Screen, ox, oy int) {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	for i := range starCount {
		x := (i*53 + g.tick/12) % w
		y := (i*7 + 1) % h
		dst.SetColored(ox+x, oy+y, StarChar, core.ColorDarkGray)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, ox, oy int) {
	frame := "<▼>"
	if (g.tick/20)%2 == 1 {
		frame = ">▼<"
	}
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		r := e.Rect()
		dst.DrawTextColored(ox+r.X, oy+r.Y, fit(frame, e.W, '▀'), rowColors[e.Row%len(rowColors)])
	}
}

func (g *Game) renderBoss(dst *core.Screen, ox, oy int) {
	b := g.boss
	if b == nil {
		return
	}
	r := b.Rect()

	// Health bar above the hull
	if r.Y > 0 {
		inner := max(b.W-2, 1)
		filled := b.HP * inner / max(b.MaxHP, 1)
		bar := "[" + strings.Repeat("■", filled) + strings.Repeat("·", inner-filled) + "]"
		dst.DrawTextColored(ox+r.X, oy+r.Y-1, bar, core.ColorMint)
	}

	mid := max(b.W-2, 0)
	for row := range b.H {
		line := "◥" + strings.Repeat("▀", mid) + "◤"
		if row == 0 {
			line = "◢" + strings.Repeat("█", mid) + "◣"
		}
		dst.DrawTextColored(ox+r.X, oy+r.Y+row, line, core.ColorPink)
	}
}

func (g *Game) renderBullets(dst *core.Screen, ox, oy int) {
	for _, b := range g.bullets {
		r := b.Rect()
		dst.SetColored(ox+r.X, oy+r.Y, PlayerShot, core.ColorAqua)
	}
	for _, b := range g.enemyBullets {
		r := b.Rect()
		if b.Boss {
			dst.SetColored(ox+r.X, oy+r.Y, BossShot, core.ColorOrange)
		} else {
			dst.SetColored(ox+r.X, oy+r.Y, EnemyShot, core.ColorRose)
		}
	}
}

func (g *Game) renderShip(dst *core.Screen, ox, oy int) {
	r := g.ship.Rect()
	dst.DrawTextColored(ox+r.X, oy+r.Y, fit("▗▟█▙▖", g.ship.W, '█'), core.ColorRoyalBlue)
}

func (g *Game) renderExplosions(dst *core.Screen, ox, oy int) {
	for _, e := range g.explosions {
		c := core.ColorGold
		if e.Life < explosionLife/2 {
			c = core.ColorOrange
		}
		dst.SetColored(ox+e.X, oy+e.Y, '*', c)
		if !e.Big {
			continue
		}
		for _, d := range []core.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
			p := core.Point{X: e.X, Y: e.Y}.Add(d)
			dst.SetColored(ox+p.X, oy+p.Y, '+', core.ColorBrightRed)
		}
	}
}

// fit returns sprite when it is exactly w runes wide, else a plain bar.
func fit(sprite string, w int, fill rune) string {
	if len([]rune(sprite)) == w {
		return sprite
	}
	return strings.Repeat(string(fill), w)
}

// renderOverlay draws a framed two-line message centred in area.
func renderOverlay(dst *core.Screen, area core.Rect, title, hint string) {
	w := min(max(len([]rune(title)), len([]rune(hint)))+4, area.W)
	h := 4
	box := core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightMagenta)
	drawCentered(dst, box, box.Y+1, title, core.ColorBrightWhite)
	drawCentered(dst, box, box.Y+2, hint, core.ColorGray)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}
