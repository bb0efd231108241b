package blocks

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// newTestGame resets a game with HOME pointed at an empty directory so a
// developer's ~/.arcade/configs never changes the rules under test.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameIDs(t *testing.T) {
	g := New()
	if g.ID() != "blocks" {
		t.Errorf("ID() = %q, expected blocks", g.ID())
	}
	if g.Title() != "Neon Blocks" {
		t.Errorf("Title() = %q, expected Neon Blocks", g.Title())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	script := []core.Action{core.ActionLeft, core.ActionUp, core.ActionPrimary, core.ActionRight, core.ActionDown}
	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		if i%20 == 0 {
			in.Set(script[(i/20)%len(script)])
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.Lines != s2.Lines {
		t.Errorf("Counters differ: %d/%d vs %d/%d", s1.Score, s1.Lines, s2.Score, s2.Lines)
	}
	if s1.Piece.Kind != s2.Piece.Kind || s1.Piece.X != s2.Piece.X || s1.Piece.Y != s2.Piece.Y {
		t.Errorf("Pieces differ: %+v vs %+v", s1.Piece, s2.Piece)
	}
	for y := range s1.Cells {
		for x := range s1.Cells[y] {
			if s1.Cells[y][x] != s2.Cells[y][x] {
				t.Fatalf("Boards differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestActionsApplyInArrivalOrder(t *testing.T) {
	g := newTestGame(t, 1)
	startX := g.Snapshot().Piece.X

	g.Step(frame(core.ActionLeft, core.ActionLeft, core.ActionRight))
	if got := g.Snapshot().Piece.X; got != startX-1 {
		t.Errorf("Piece.X = %d, expected %d", got, startX-1)
	}

	// Moving before the hard drop changes where the piece lands
	a := newTestGame(t, 99)
	b := newTestGame(t, 99)
	a.Step(frame(core.ActionLeft, core.ActionLeft, core.ActionPrimary))
	b.Step(frame(core.ActionPrimary, core.ActionLeft, core.ActionLeft))

	same := true
	ca, cb := a.Snapshot().Cells, b.Snapshot().Cells
	for y := range ca {
		for x := range ca[y] {
			if ca[y][x] != cb[y][x] {
				same = false
			}
		}
	}
	if same {
		t.Error("Reordering actions should change the settled board")
	}
}

func TestFirstKeyStartsGame(t *testing.T) {
	g := newTestGame(t, 3)
	if g.Snapshot().State != StateNotStarted {
		t.Fatalf("State = %v, expected not started", g.Snapshot().State)
	}

	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Piece.Y != 0 {
		t.Error("Piece should not fall before the first key")
	}

	g.Step(frame(core.ActionRight))
	if g.Snapshot().State != StateRunning {
		t.Errorf("State = %v, expected running", g.Snapshot().State)
	}
}

func TestTickDrivesGravity(t *testing.T) {
	g := newTestGame(t, 5)

	// 60 steps at 60 Hz sum to just under one second
	g.Step(frame(core.ActionLeft))
	for i := 0; i < 59; i++ {
		g.Step(core.NewInputFrame())
	}
	if y := g.Snapshot().Piece.Y; y != 0 {
		t.Fatalf("Piece.Y = %d after 60 steps, expected 0", y)
	}

	g.Step(core.NewInputFrame())
	if y := g.Snapshot().Piece.Y; y != 1 {
		t.Errorf("Piece.Y = %d after 61 steps, expected 1", y)
	}
}

func TestPauseGatesInput(t *testing.T) {
	g := newTestGame(t, 8)
	g.Step(frame(core.ActionPause))

	if !g.State().Paused {
		t.Fatal("Pause should pause the game")
	}

	before := g.Snapshot()
	g.Step(frame(core.ActionLeft, core.ActionPrimary, core.ActionUp, core.ActionDown))
	after := g.Snapshot()
	if after.Piece.X != before.Piece.X || after.Piece.Y != before.Piece.Y || after.Score != before.Score {
		t.Error("Moves should be dropped while paused")
	}

	g.Step(frame(core.ActionPause, core.ActionLeft))
	if g.State().Paused {
		t.Error("Second pause should resume")
	}
	if g.Snapshot().Piece.X != before.Piece.X-1 {
		t.Error("Move after resume in the same frame should apply")
	}
}

func TestRestartWhilePaused(t *testing.T) {
	g := newTestGame(t, 8)
	g.Step(frame(core.ActionPrimary, core.ActionPrimary, core.ActionPause))

	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	if snap.State != StateRunning {
		t.Errorf("State = %v after restart, expected running", snap.State)
	}
	for _, row := range snap.Cells {
		for _, v := range row {
			if v != 0 {
				t.Fatal("Restart should clear the board")
			}
		}
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(t, 21)

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionPrimary))
	}
	if !g.State().GameOver {
		t.Fatal("Repeated hard drops should end the game")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Pause should be ignored after game over")
	}
}

func TestSetHighScoreShowsInHUD(t *testing.T) {
	g := newTestGame(t, 2)
	g.SetHighScore(4200)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Best: 4200") {
		t.Errorf("HUD should show the stored best, got %q", screen.Row(0))
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 4)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Neon Blocks", "┌", "┘", "NEON BLOCKS", "Press any key", "SCORE"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}

	// After a hard drop the settled blocks carry the piece color
	kind := g.Snapshot().Piece.Kind
	g.Step(frame(core.ActionPrimary))
	g.Render(screen)

	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == '█' && c.Color == ColorFor(int(kind)) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Errorf("No %v colored block found after landing", kind)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := newTestGame(t, 6)
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Expected too-small overlay")
	}

	g.Step(frame(core.ActionRight))
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}
	if y := g.Snapshot().Piece.Y; y != 0 {
		t.Errorf("Gravity should wait while the window is too small, Piece.Y = %d", y)
	}
}

func TestColorForKinds(t *testing.T) {
	seen := make(map[core.Color]bool)
	for _, k := range kindOrder {
		c := ColorFor(int(k))
		if c == core.ColorDefault {
			t.Errorf("%v has no color", k)
		}
		if seen[c] {
			t.Errorf("%v shares a color with another piece", k)
		}
		seen[c] = true
	}
	if ColorFor(0) != core.ColorDefault {
		t.Error("Empty cells use the default color")
	}
}
