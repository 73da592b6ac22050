package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/puzzlekit/grid"
)

func TestLattice_Basics(t *testing.T) {
	l := grid.NewLattice[rune]()
	_, ok := l.BoundingBox()
	assert.False(t, ok)

	_, replaced := l.Set(grid.Pt(-2, 3), '#')
	assert.False(t, replaced)
	prev, replaced := l.Set(grid.Pt(-2, 3), '@')
	assert.True(t, replaced)
	assert.Equal(t, '#', prev)
	l.Set(grid.Pt(1, -1), '#')

	assert.True(t, l.Contains(grid.Pt(1, -1)))
	assert.False(t, l.Contains(grid.Pt(0, 0)))
	assert.Equal(t, 2, l.Len())

	box, ok := l.BoundingBox()
	assert.True(t, ok)
	assert.Equal(t, grid.Dimensions[int]{MinRow: -2, MaxRow: 2, MinCol: -1, MaxCol: 4}, box)

	p, ok := grid.FindIn(l, '@')
	assert.True(t, ok)
	assert.Equal(t, grid.Pt(-2, 3), p)

	assert.True(t, l.Update(p, func(v *rune) { *v = 'o' }))
	assert.Equal(t, 'o', l.At(p))
	assert.False(t, l.Update(grid.Pt(9, 9), func(*rune) {}))
	assert.Panics(t, func() { l.At(grid.Pt(9, 9)) })

	l.Delete(p)
	assert.Equal(t, 1, l.Len())
}

func TestLattice_ZeroValue(t *testing.T) {
	var l grid.Lattice[int]
	assert.Equal(t, 0, l.Len())
	_, ok := l.Get(grid.Pt(0, 0))
	assert.False(t, ok)

	_, replaced := l.Set(grid.Pt(1, 1), 5)
	assert.False(t, replaced)
	assert.Equal(t, 5, l.At(grid.Pt(1, 1)))

	var m grid.Lattice[int]
	m.ApplyBlockWithDefault(grid.NewBlock(grid.Pt(0, 0), grid.Pt(0, 1)), func(v *int, _ grid.Point[int]) { *v++ })
	assert.Equal(t, 2, m.Len())

	var n grid.Lattice[int]
	n.SetBlock(grid.NewBlock(grid.Pt(2, 2)), 9)
	assert.True(t, n.Contains(grid.Pt(2, 2)))
}

func TestLattice_Blocks(t *testing.T) {
	floor := grid.LatticeFrom(func(yield func(grid.Point[int], rune) bool) {
		for c := 0; c < 3; c++ {
			if !yield(grid.Pt(0, c), '#') {
				return
			}
		}
	})
	piece := grid.NewBlock(grid.Pt(-2, 1), grid.Pt(-1, 1))

	assert.False(t, floor.IntersectsBlock(piece))
	assert.True(t, floor.IntersectsBlock(piece.Add(grid.Down)))

	floor.SetBlock(piece, '@')
	assert.Equal(t, ".@.\n.@.\n###", floor.Render(func(r rune) string { return string(r) }, "."))

	counts := grid.NewLattice[int]()
	sq := grid.NewBlock(grid.Pt(0, 0), grid.Pt(0, 1))
	counts.ApplyBlockWithDefault(sq, func(v *int, _ grid.Point[int]) { *v++ })
	counts.ApplyBlock(sq.Add(grid.Right), func(v *int, _ grid.Point[int]) { *v *= 10 }, 7)
	assert.Equal(t, 1, counts.At(grid.Pt(0, 0)))
	assert.Equal(t, 10, counts.At(grid.Pt(0, 1)))
	assert.Equal(t, 70, counts.At(grid.Pt(0, 2)))
}

func TestBlock(t *testing.T) {
	b := grid.NewBlock(grid.Pt(1, 2), grid.Pt(3, 0))
	b.AddPoint(grid.Pt(2, 5))
	assert.Equal(t, 3, b.Len())

	d, ok := b.Dimensions()
	assert.True(t, ok)
	assert.Equal(t, grid.Dimensions[int]{MinRow: 1, MaxRow: 4, MinCol: 0, MaxCol: 6}, d)

	minRow, _ := b.MinRow()
	maxRow, _ := b.MaxRow()
	minCol, _ := b.MinCol()
	maxCol, _ := b.MaxCol()
	assert.Equal(t, [4]int{1, 3, 0, 5}, [4]int{minRow, maxRow, minCol, maxCol})

	_, ok = b.AddChecked(grid.Left, grid.Dims(10, 10))
	assert.False(t, ok)
	moved, ok := b.AddChecked(grid.Down, grid.Dims(10, 10))
	assert.True(t, ok)
	assert.True(t, moved.Intersects(grid.NewBlock(grid.Pt(4, 0))))
	assert.False(t, moved.Intersects(b.Add(grid.Up)))

	_, ok = grid.NewBlock[int]().Dimensions()
	assert.False(t, ok)
}
