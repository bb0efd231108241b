// Package blocks implements Neon Blocks, a falling-block puzzle.
//
// Engine is the playfield core: it owns the board and the active piece and
// exposes discrete commands plus Tick for gravity. It never reads the clock
// and never renders; Game adapts it to the arcade registry.
package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
)

// State is the engine lifecycle state.
type State string

const (
	StateNotStarted State = "not_started"
	StateRunning    State = "running"
	StatePaused     State = "paused"
	StateGameOver   State = "game_over"
)

// Rules are the tunable numbers of a game.
type Rules struct {
	Width         int
	Height        int
	GravityBase   time.Duration // Fall interval at level 1
	GravityStep   time.Duration // Reduction per level
	GravityFloor  time.Duration // Fastest interval
	LinePoints    int           // First row of a landing; each further row doubles
	LinesPerLevel int
}

// DefaultRules returns the standard 12x20 rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultBlocksConfig())
}

// RulesFromConfig converts a loaded config into engine rules.
func RulesFromConfig(cfg config.BlocksConfig) Rules {
	return Rules{
		Width:         cfg.Board.Width,
		Height:        cfg.Board.Height,
		GravityBase:   cfg.Gravity.Base(),
		GravityStep:   cfg.Gravity.Step(),
		GravityFloor:  cfg.Gravity.Floor(),
		LinePoints:    cfg.Scoring.LinePoints,
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
	}
}

// Piece is the falling piece. X and Y locate the shape's top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Engine runs one game. It is not safe for concurrent use.
type Engine struct {
	rules Rules
	rng   *rand.Rand
	board *Board
	piece Piece

	state State
	score int
	lines int
	acc   time.Duration // Gravity accumulator
}

// NewEngine creates an engine with an empty board and a first piece waiting
// at the spawn point. The game starts with the first command.
func NewEngine(rules Rules, rng *rand.Rand) *Engine {
	e := &Engine{
		rules: rules,
		rng:   rng,
		board: NewBoard(rules.Width, rules.Height),
		state: StateNotStarted,
	}
	e.Spawn()
	return e
}

// Board exposes the board for read-only inspection.
func (e *Engine) Board() *Board { return e.board }

// Piece returns a copy of the active piece.
func (e *Engine) Piece() Piece {
	p := e.piece
	p.Shape = p.Shape.Clone()
	return p
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Score returns the points earned this game.
func (e *Engine) Score() int { return e.score }

// Lines returns the rows cleared this game.
func (e *Engine) Lines() int { return e.lines }

// Level is 1 + lines / LinesPerLevel.
func (e *Engine) Level() int {
	per := e.rules.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	return 1 + e.lines/per
}

// GravityInterval is the time between automatic drops at the current level.
func (e *Engine) GravityInterval() time.Duration {
	d := e.rules.GravityBase - time.Duration(e.Level()-1)*e.rules.GravityStep
	return max(d, e.rules.GravityFloor)
}

// start moves a fresh engine into Running on its first command.
func (e *Engine) start() {
	if e.state == StateNotStarted {
		e.state = StateRunning
	}
}

// acceptsMoves reports whether piece commands have any effect.
func (e *Engine) acceptsMoves() bool {
	e.start()
	return e.state != StateGameOver
}

// Spawn places a random piece centred at the top. If it does not fit, the
// board is cleared and the game is over.
func (e *Engine) Spawn() {
	kind := RandomKind(e.rng)
	shape := ShapeFor(kind)
	e.piece = Piece{
		Kind:  kind,
		Shape: shape,
		X:     e.rules.Width/2 - shape.Size()/2,
		Y:     0,
	}

	if e.Collide() {
		e.board.ClearAll()
		e.state = StateGameOver
	}
}

// Collide reports whether the active piece overlaps the board or its walls.
func (e *Engine) Collide() bool {
	return e.board.Collides(e.piece.Shape, e.piece.X, e.piece.Y)
}

// MoveLeft shifts the piece one column left if it fits.
func (e *Engine) MoveLeft() { e.move(-1) }

// MoveRight shifts the piece one column right if it fits.
func (e *Engine) MoveRight() { e.move(1) }

func (e *Engine) move(dx int) {
	if !e.acceptsMoves() {
		return
	}
	e.piece.X += dx
	if e.Collide() {
		e.piece.X -= dx
	}
}

// SoftDrop moves the piece down one row, landing it if it cannot move.
func (e *Engine) SoftDrop() {
	if !e.acceptsMoves() {
		return
	}
	e.drop()
}

func (e *Engine) drop() {
	e.piece.Y++
	if e.Collide() {
		e.piece.Y--
		e.land()
	}
	e.acc = 0
}

// HardDrop drops the piece as far as it goes and lands it.
func (e *Engine) HardDrop() {
	if !e.acceptsMoves() {
		return
	}
	for !e.Collide() {
		e.piece.Y++
	}
	e.piece.Y--
	e.land()
	e.acc = 0
}

// land merges the piece, clears rows, scores and spawns the next piece.
func (e *Engine) land() {
	e.board.Merge(e.piece.Shape, e.piece.X, e.piece.Y)
	rows := e.board.SweepCompletedRows()

	points := e.rules.LinePoints
	for range rows {
		e.score += points
		points *= 2
	}
	e.lines += rows

	e.Spawn()
}

// RotateCW turns the piece clockwise, kicking it sideways if needed.
func (e *Engine) RotateCW() { e.rotate(1) }

// RotateCCW turns the piece counter-clockwise, kicking it sideways if needed.
func (e *Engine) RotateCCW() { e.rotate(-1) }

// rotate tries offsets +1, -2, +3, -4, ... applied cumulatively, so the piece
// visits x+1, x-1, x+2, x-2 and so on. Once the next offset exceeds the shape
// width the rotation is undone and x restored.
func (e *Engine) rotate(dir int) {
	if !e.acceptsMoves() {
		return
	}

	origX := e.piece.X
	offset := 1
	e.piece.Shape.Rotate(dir)
	for e.Collide() {
		e.piece.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if offset > e.piece.Shape.Size() {
			e.piece.Shape.Rotate(-dir)
			e.piece.X = origX
			return
		}
	}
}

// Pause suspends gravity. Ignored once the game is over.
func (e *Engine) Pause() {
	e.start()
	if e.state == StateRunning {
		e.state = StatePaused
	}
}

// Resume restarts gravity after Pause.
func (e *Engine) Resume() {
	e.start()
	if e.state == StatePaused {
		e.state = StateRunning
	}
}

// TogglePause switches between Running and Paused.
func (e *Engine) TogglePause() {
	if e.state == StatePaused {
		e.Resume()
		return
	}
	e.Pause()
}

// Reset starts a new game from any state.
func (e *Engine) Reset() {
	e.board.ClearAll()
	e.score = 0
	e.lines = 0
	e.acc = 0
	e.state = StateRunning
	e.Spawn()
}

// Tick advances gravity by dt. Only a running game falls.
func (e *Engine) Tick(dt time.Duration) {
	if e.state != StateRunning {
		return
	}
	e.acc += dt
	if e.acc > e.GravityInterval() {
		e.drop()
	}
}

// GhostY returns the row the active piece would land on if hard dropped.
func (e *Engine) GhostY() int {
	y := e.piece.Y
	for !e.board.Collides(e.piece.Shape, e.piece.X, y+1) {
		y++
	}
	return y
}
