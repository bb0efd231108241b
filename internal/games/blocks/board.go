package blocks

// Board is the fixed-size well. Cells hold 0 or the Kind of a settled block.
// Row 0 is the top.
type Board struct {
	width  int
	height int
	cells  [][]int
}

// NewBoard creates an empty width x height board.
// Both dimensions must be positive.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]int, height)
	for y := range b.cells {
		b.cells[y] = make([]int, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// CellAt returns the value at (x, y) and whether the coordinate is on the board.
func (b *Board) CellAt(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return b.cells[y][x], true
}

// Collides reports whether shape placed with its top-left corner at (px, py)
// overlaps a settled cell or leaves the well through a side or the floor.
// Cells above the top edge never collide.
func (b *Board) Collides(shape Shape, px, py int) bool {
	for y, row := range shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			bx, by := px+x, py+y
			if bx < 0 || bx >= b.width || by >= b.height {
				return true
			}
			if by >= 0 && b.cells[by][bx] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge writes every occupied shape cell into the board at (px, py).
// Cells above row 0 or outside the side walls are dropped.
func (b *Board) Merge(shape Shape, px, py int) {
	for y, row := range shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			bx, by := px+x, py+y
			if by < 0 || by >= b.height || bx < 0 || bx >= b.width {
				continue
			}
			b.cells[by][bx] = v
		}
	}
}

// SweepCompletedRows removes every full row, shifting the rows above it down
// and inserting an empty row at the top. Returns the number of rows removed.
func (b *Board) SweepCompletedRows() int {
	removed := 0
	for y := b.height - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}

		row := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		clear(row)
		b.cells[0] = row
		removed++
		// Same y now holds the row that was above; check it again
	}
	return removed
}

func (b *Board) rowFull(y int) bool {
	for _, v := range b.cells[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// ClearAll empties every cell.
func (b *Board) ClearAll() {
	for _, row := range b.cells {
		clear(row)
	}
}

// Cells returns a copy of the grid, indexed [y][x].
func (b *Board) Cells() [][]int {
	out := make([][]int, b.height)
	for y, row := range b.cells {
		out[y] = append([]int(nil), row...)
	}
	return out
}
