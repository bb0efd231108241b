package blocks

import "math/rand"

// Kind identifies a piece. The value doubles as the board cell tag.
type Kind int

const (
	KindNone Kind = iota
	KindT
	KindO
	KindL
	KindJ
	KindI
	KindS
	KindZ
)

// kindOrder is the draw pool for RandomKind.
var kindOrder = [...]Kind{KindI, KindL, KindJ, KindO, KindT, KindS, KindZ}

// String returns the one-letter piece name.
func (k Kind) String() string {
	switch k {
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a square grid of cells; 0 is empty, anything else is the piece kind.
type Shape [][]int

var catalog = map[Kind]Shape{
	KindT: {
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	},
	KindO: {
		{2, 2},
		{2, 2},
	},
	KindL: {
		{0, 3, 0},
		{0, 3, 0},
		{0, 3, 3},
	},
	KindJ: {
		{0, 4, 0},
		{0, 4, 0},
		{4, 4, 0},
	},
	KindI: {
		{0, 5, 0, 0},
		{0, 5, 0, 0},
		{0, 5, 0, 0},
		{0, 5, 0, 0},
	},
	KindS: {
		{0, 6, 6},
		{6, 6, 0},
		{0, 0, 0},
	},
	KindZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// ShapeFor returns a fresh copy of the catalogue shape for k,
// or nil for an unknown kind. Callers may mutate the result freely.
func ShapeFor(k Kind) Shape {
	s, ok := catalog[k]
	if !ok {
		return nil
	}
	return s.Clone()
}

// RandomKind picks one of the seven kinds uniformly.
func RandomKind(rng *rand.Rand) Kind {
	return kindOrder[rng.Intn(len(kindOrder))]
}

// Size returns the side length of the square grid.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Rotate turns the shape a quarter turn in place.
// dir > 0 is clockwise, dir < 0 counter-clockwise.
func (s Shape) Rotate(dir int) {
	for y := range s {
		for x := 0; x < y; x++ {
			s[x][y], s[y][x] = s[y][x], s[x][y]
		}
	}

	if dir > 0 {
		for _, row := range s {
			for l, r := 0, len(row)-1; l < r; l, r = l+1, r-1 {
				row[l], row[r] = row[r], row[l]
			}
		}
		return
	}
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// Equal reports whether both shapes have identical cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}
