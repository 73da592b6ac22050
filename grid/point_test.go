package grid_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/puzzlekit/grid"
)

func TestPoint_AddChecked(t *testing.T) {
	dims := grid.Dims(3, 4)

	q, ok := grid.Pt(1, 1).AddChecked(grid.Down, dims)
	assert.True(t, ok)
	assert.Equal(t, grid.Pt(2, 1), q)

	_, ok = grid.Pt(2, 1).AddChecked(grid.Down, dims)
	assert.False(t, ok, "falls off the bottom edge")

	_, ok = grid.Pt(0, 3).AddChecked(grid.Right, dims)
	assert.False(t, ok, "falls off the right edge")

	// Unsigned coordinates must not wrap around.
	_, ok = grid.Pt[uint](0, 0).AddChecked(grid.Up, grid.Dims[uint](5, 5))
	assert.False(t, ok)

	_, ok = grid.Pt[uint8](250, 0).AddChecked(grid.Delta{Row: 10}, grid.Dims[uint8](255, 255))
	assert.False(t, ok, "overflow of uint8")
}

func TestPoint_SubAndNorms(t *testing.T) {
	d := grid.Pt(5, -2).Sub(grid.Pt(1, 1))
	assert.Equal(t, grid.Delta{Row: 4, Col: -3}, d)
	assert.Equal(t, 7, d.L1Norm())
	assert.Equal(t, 4, d.ChebyshevNorm())
	assert.Equal(t, grid.Delta{Row: -4, Col: 3}, d.Neg())
	assert.Equal(t, grid.Delta{Row: 8, Col: -6}, d.Scale(2))
	assert.Equal(t, grid.Delta{Row: 5, Col: -3}, d.Plus(grid.Down))
	assert.Equal(t, grid.Delta{Row: 4, Col: -2}, d.Plus(grid.Right))
	assert.Equal(t, 7, grid.Pt(5, -2).Manhattan(grid.Pt(1, 1)))
}

func TestDelta_MinStep(t *testing.T) {
	assert.Equal(t, grid.Delta{Row: 1, Col: 2}, grid.Delta{Row: 3, Col: 6}.MinStep())
	assert.Equal(t, grid.Delta{Row: 0, Col: -1}, grid.Delta{Row: 0, Col: -7}.MinStep())
	assert.Equal(t, grid.Delta{Row: -2, Col: 3}, grid.Delta{Row: -4, Col: 6}.MinStep())
	assert.Equal(t, grid.Zero, grid.Zero.MinStep())
}

func TestPoint_TraverseBy(t *testing.T) {
	got := slices.Collect(grid.Pt(0, 1).TraverseBy(grid.Right, grid.Dims(2, 4)))
	assert.Equal(t, []grid.Point[int]{{0, 1}, {0, 2}, {0, 3}}, got)

	got = slices.Collect(grid.Pt(1, 1).TraverseBy(grid.Zero, grid.Dims(2, 4)))
	assert.Equal(t, []grid.Point[int]{{1, 1}}, got)

	// Early break must be honoured.
	var first []grid.Point[int]
	for p := range grid.Pt(0, 0).TraverseBy(grid.DownRight, grid.Dims(10, 10)) {
		first = append(first, p)
		if len(first) == 2 {
			break
		}
	}
	assert.Len(t, first, 2)
}

func TestPoint_TraverseTo(t *testing.T) {
	got := slices.Collect(grid.Pt(0, 0).TraverseTo(grid.Pt(2, 4)))
	assert.Equal(t, []grid.Point[int]{{0, 0}, {1, 2}, {2, 4}}, got)

	got = slices.Collect(grid.Pt(3, 3).TraverseTo(grid.Pt(3, 0)))
	assert.Equal(t, []grid.Point[int]{{3, 3}, {3, 2}, {3, 1}, {3, 0}}, got)

	got = slices.Collect(grid.Pt(-1, -1).TraverseTo(grid.Pt(-1, -1)))
	assert.Equal(t, []grid.Point[int]{{-1, -1}}, got)
}

func TestPoint_Neighbors(t *testing.T) {
	got := slices.Collect(grid.Pt(0, 0).Neighbors(grid.PlusAdjacent, grid.Dims(3, 3)))
	assert.Equal(t, []grid.Point[int]{{0, 1}, {1, 0}}, got)

	got = slices.Collect(grid.Pt(1, 1).Neighbors(grid.Adjacent, grid.Dims(3, 3)))
	assert.Len(t, got, 8)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, grid.West, grid.North.RotateLeft())
	assert.Equal(t, grid.East, grid.North.RotateRight())
	assert.Equal(t, grid.North, grid.West.RotateRight())
	assert.Equal(t, grid.South, grid.North.Reverse())
	assert.Equal(t, grid.Delta{Row: 0, Col: -3}, grid.West.Times(3))
	assert.Equal(t, grid.Down, grid.South.Delta())
	assert.Equal(t, "East", grid.East.String())

	for _, d := range grid.Directions() {
		assert.Equal(t, d, d.RotateLeft().RotateRight())
		assert.Equal(t, d.Delta().Neg(), d.Reverse().Delta())
	}
}

func TestDimensions(t *testing.T) {
	d := grid.OfPointsInclusive(grid.Pt(3, -1), grid.Pt(1, 2))
	assert.Equal(t, grid.Dimensions[int]{MinRow: 1, MaxRow: 4, MinCol: -1, MaxCol: 3}, d)
	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, 4, d.Cols())
	assert.Equal(t, 12, d.Area())
	assert.True(t, d.Contains(grid.Pt(1, -1)))
	assert.False(t, d.Contains(grid.Pt(4, 0)))
	assert.Equal(t, "rows: (1 - 4), cols: (-1 - 3)", d.String())

	g := d.GrowToContain(grid.Pt(7, 0))
	assert.Equal(t, 7, g.MaxRow-1)
	assert.Equal(t, 12, len(slices.Collect(d.Points())))
	assert.True(t, grid.Dims(0, 5).IsEmpty())
}
