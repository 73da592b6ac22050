package grid

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Block is a small, explicit set of points describing a movable shape,
// such as a falling piece tested for collision against a Lattice.
type Block[T constraints.Integer] struct {
	points []Point[T]
}

// NewBlock returns a block made of the given points.
func NewBlock[T constraints.Integer](points ...Point[T]) Block[T] {
	return Block[T]{points: slices.Clone(points)}
}

// AddPoint appends p to b.
func (b *Block[T]) AddPoint(p Point[T]) { b.points = append(b.points, p) }

// Len returns the number of points in b.
func (b Block[T]) Len() int { return len(b.points) }

// Points yields the points of b in insertion order.
func (b Block[T]) Points() iter.Seq[Point[T]] { return slices.Values(b.points) }

// Intersects reports whether b and o share a point.
func (b Block[T]) Intersects(o Block[T]) bool {
	for _, p := range b.points {
		if slices.Contains(o.points, p) {
			return true
		}
	}

	return false
}

// Dimensions returns the bounding box of b, or ok == false for an empty block.
func (b Block[T]) Dimensions() (Dimensions[T], bool) {
	if len(b.points) == 0 {
		return Dimensions[T]{}, false
	}
	d := OfPointsInclusive(b.points[0], b.points[0])
	for _, p := range b.points[1:] {
		d = d.GrowToContain(p)
	}

	return d, true
}

// MinRow returns the smallest row of b.
func (b Block[T]) MinRow() (T, bool) {
	d, ok := b.Dimensions()
	return d.MinRow, ok
}

// MaxRow returns the largest row of b.
func (b Block[T]) MaxRow() (T, bool) {
	d, ok := b.Dimensions()
	return d.MaxRow - 1, ok
}

// MinCol returns the smallest column of b.
func (b Block[T]) MinCol() (T, bool) {
	d, ok := b.Dimensions()
	return d.MinCol, ok
}

// MaxCol returns the largest column of b.
func (b Block[T]) MaxCol() (T, bool) {
	d, ok := b.Dimensions()
	return d.MaxCol - 1, ok
}

// Add returns b translated by d.
func (b Block[T]) Add(d Delta) Block[T] {
	out := make([]Point[T], len(b.points))
	for i, p := range b.points {
		out[i] = p.Add(d)
	}

	return Block[T]{points: out}
}

// AddChecked returns b translated by d, or ok == false if any point
// would leave dims.
func (b Block[T]) AddChecked(d Delta, dims Dimensions[T]) (Block[T], bool) {
	out := make([]Point[T], len(b.points))
	for i, p := range b.points {
		q, ok := p.AddChecked(d, dims)
		if !ok {
			return Block[T]{}, false
		}
		out[i] = q
	}

	return Block[T]{points: out}, true
}
