package blocks

import "time"

// Snapshot is a copy of everything the presentation layer needs.
// It shares no memory with the engine.
type Snapshot struct {
	Width   int
	Height  int
	Cells   [][]int // [y][x], 0 = empty, otherwise a Kind
	Piece   Piece
	GhostY  int
	Score   int
	Lines   int
	Level   int
	Gravity time.Duration
	State   State
}

// Paused reports whether gravity is suspended.
func (s Snapshot) Paused() bool { return s.State == StatePaused }

// GameOver reports whether the game has ended.
func (s Snapshot) GameOver() bool { return s.State == StateGameOver }

// Started reports whether the first command has been received.
func (s Snapshot) Started() bool { return s.State != StateNotStarted }

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:   e.board.Width(),
		Height:  e.board.Height(),
		Cells:   e.board.Cells(),
		Piece:   e.Piece(),
		GhostY:  e.GhostY(),
		Score:   e.score,
		Lines:   e.lines,
		Level:   e.Level(),
		Gravity: e.GravityInterval(),
		State:   e.state,
	}
}
