package blocks

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const (
	cellW     = 2 // Terminal columns per board cell
	hudHeight = 2 // Status line plus separator
	panelW    = 20
)

// kindColors are the neon tags of the seven pieces.
var kindColors = map[Kind]core.Color{
	KindT: core.ColorRose,
	KindO: core.ColorGold,
	KindL: core.ColorAqua,
	KindJ: core.ColorLavender,
	KindI: core.ColorRoyalBlue,
	KindS: core.ColorMint,
	KindZ: core.ColorPink,
}

// ColorFor returns the display color of a board cell value.
func ColorFor(v int) core.Color {
	if c, ok := kindColors[Kind(v)]; ok {
		return c
	}
	return core.ColorDefault
}

// wellSize returns the bordered well dimensions in terminal cells.
func (g *Game) wellSize() (int, int) {
	return g.rules.Width*cellW + 2, g.rules.Height + 2
}

// Render draws the HUD, the well, the pieces and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()
	g.renderHUD(dst, snap)

	wellW, wellH := g.wellSize()
	g.tooSmall = dst.Width() < wellW || dst.Height() < wellH+hudHeight
	if g.tooSmall {
		g.renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()),
			"Window too small", fmt.Sprintf("Need %dx%d", wellW, wellH+hudHeight))
		return
	}

	// Centre the well, leaving room for the side panel when it fits
	total := wellW
	showPanel := dst.Width() >= wellW+panelW+2
	if showPanel {
		total += panelW + 2
	}
	well := core.NewRect((dst.Width()-total)/2, hudHeight, wellW, wellH)

	g.renderWell(dst, well, snap)
	if showPanel {
		g.renderPanel(dst, well.Right()+2, well.Y+1, snap)
	}

	switch snap.State {
	case StateNotStarted:
		g.renderOverlay(dst, well, "NEON BLOCKS", "Press any key")
	case StatePaused:
		g.renderOverlay(dst, well, "Paused", "P to resume")
	case StateGameOver:
		g.renderOverlay(dst, well, "Game Over", "R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Neon Blocks | Score: %d  Lines: %d  Level: %d  Best: %d",
		snap.Score, snap.Lines, snap.Level, max(g.best, snap.Score))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the border, settled blocks, the ghost and the active piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect, snap Snapshot) {
	dst.DrawBoxColored(well, core.ColorViolet)
	ox, oy := well.X+1, well.Y+1

	for y, row := range snap.Cells {
		for x, v := range row {
			if v == 0 {
				dst.DrawTextColored(ox+x*cellW, oy+y, " ·", core.ColorDarkGray)
				continue
			}
			dst.DrawTextColored(ox+x*cellW, oy+y, "██", ColorFor(v))
		}
	}

	if snap.State == StateGameOver {
		return
	}

	p := snap.Piece
	if snap.GhostY > p.Y {
		drawShape(dst, p.Shape, ox+p.X*cellW, oy+snap.GhostY, "░░", ColorFor(int(p.Kind)))
	}
	drawShape(dst, p.Shape, ox+p.X*cellW, oy+p.Y, "██", ColorFor(int(p.Kind)))
}

// drawShape paints the occupied cells of shape with its corner at screen (sx, sy).
func drawShape(dst *core.Screen, shape Shape, sx, sy int, glyph string, c core.Color) {
	for y, row := range shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			dst.DrawTextColored(sx+x*cellW, sy+y, glyph, c)
		}
	}
}

// renderPanel draws the stats and controls to the right of the well.
func (g *Game) renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"SCORE", core.ColorGray},
		{fmt.Sprintf("%d", snap.Score), core.ColorGold},
		{"", core.ColorDefault},
		{"LINES", core.ColorGray},
		{fmt.Sprintf("%d", snap.Lines), core.ColorAqua},
		{"", core.ColorDefault},
		{"LEVEL", core.ColorGray},
		{fmt.Sprintf("%d  (%dms)", snap.Level, snap.Gravity.Milliseconds()), core.ColorPink},
		{"", core.ColorDefault},
		{"BEST", core.ColorGray},
		{fmt.Sprintf("%d", max(g.best, snap.Score)), core.ColorMint},
		{"", core.ColorDefault},
		{"←/→  move", core.ColorDarkGray},
		{"↑/z  rotate", core.ColorDarkGray},
		{"↓    soft drop", core.ColorDarkGray},
		{"spc  hard drop", core.ColorDarkGray},
		{"p    pause", core.ColorDarkGray},
		{"r    restart", core.ColorDarkGray},
	}
	for i, l := range lines {
		dst.DrawTextColored(x, y+i, l.text, l.color)
	}
}

// renderOverlay draws a boxed two-line message centred in area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(maxLen+4, area.W)
	boxH := 5
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightMagenta)
	drawCentered(dst, box, box.Y+1, line1, core.ColorBrightWhite)
	drawCentered(dst, box, box.Y+3, line2, core.ColorGray)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}
