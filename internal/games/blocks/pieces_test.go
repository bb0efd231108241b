package blocks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShapes(t *testing.T) {
	sizes := map[Kind]int{
		KindT: 3, KindO: 2, KindL: 3, KindJ: 3, KindI: 4, KindS: 3, KindZ: 3,
	}

	for kind, size := range sizes {
		t.Run(kind.String(), func(t *testing.T) {
			s := ShapeFor(kind)
			require.Equal(t, size, s.Size())

			filled := 0
			for _, row := range s {
				require.Len(t, row, size, "shape must be square")
				for _, v := range row {
					if v != 0 {
						assert.Equal(t, int(kind), v)
						filled++
					}
				}
			}
			assert.Equal(t, 4, filled)
		})
	}
}

func TestShapeForReturnsUnaliasedCopy(t *testing.T) {
	s := ShapeFor(KindT)
	s[1][1] = 0
	s.Rotate(1)

	assert.True(t, ShapeFor(KindT).Equal(Shape{
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	}))
	assert.Nil(t, ShapeFor(KindNone))
}

func TestRotateClockwise(t *testing.T) {
	s := ShapeFor(KindT)
	s.Rotate(1)

	assert.Equal(t, Shape{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	}, s)
}

func TestRotateCounterClockwise(t *testing.T) {
	s := ShapeFor(KindS)
	s.Rotate(-1)

	assert.Equal(t, Shape{
		{6, 0, 0},
		{6, 6, 0},
		{0, 6, 0},
	}, s)
}

func TestRotateRoundTrips(t *testing.T) {
	for _, kind := range kindOrder {
		orig := ShapeFor(kind)

		s := ShapeFor(kind)
		s.Rotate(1)
		s.Rotate(-1)
		assert.True(t, orig.Equal(s), "%v: CW then CCW should be identity", kind)

		for range 4 {
			s.Rotate(1)
		}
		assert.True(t, orig.Equal(s), "%v: four CW turns should be identity", kind)
	}
}

func TestRandomKindDeterministicAndCovering(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))

	seen := make(map[Kind]int)
	for range 7000 {
		k := RandomKind(a)
		require.Equal(t, k, RandomKind(b), "same seed should give same sequence")
		seen[k]++
	}

	assert.Len(t, seen, 7)
	for k, n := range seen {
		assert.Greater(t, n, 700, "%v drawn only %d times", k, n)
	}
}
