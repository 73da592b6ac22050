package grid

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/puzzlekit/numtheory"
)

// Point is a (Row, Col) coordinate.
type Point[T constraints.Integer] struct {
	Row, Col T
}

// Pt is shorthand for Point[T]{Row: row, Col: col}.
func Pt[T constraints.Integer](row, col T) Point[T] {
	return Point[T]{Row: row, Col: col}
}

// Delta is an offset between two points.
type Delta struct {
	Row, Col int
}

// Add translates p by d without any bounds check.
func (p Point[T]) Add(d Delta) Point[T] {
	return Point[T]{Row: T(int(p.Row) + d.Row), Col: T(int(p.Col) + d.Col)}
}

// AddChecked translates p by d and reports whether the result lies inside
// dims. It also fails when the result cannot be represented in T, e.g.
// stepping North from row 0 of a Point[uint].
func (p Point[T]) AddChecked(d Delta, dims Dimensions[T]) (Point[T], bool) {
	row, ok := offset(p.Row, d.Row)
	if !ok {
		return Point[T]{}, false
	}
	col, ok := offset(p.Col, d.Col)
	if !ok {
		return Point[T]{}, false
	}
	q := Point[T]{Row: row, Col: col}
	if !dims.Contains(q) {
		return Point[T]{}, false
	}

	return q, true
}

// offset adds d to v in int64 and rejects results T cannot hold.
func offset[T constraints.Integer](v T, d int) (T, bool) {
	w := int64(v) + int64(d)
	r := T(w)
	if int64(r) != w || (w < 0) != (r < 0) {
		return 0, false
	}

	return r, true
}

// Sub returns the offset that takes q to p.
func (p Point[T]) Sub(q Point[T]) Delta {
	return Delta{Row: int(p.Row) - int(q.Row), Col: int(p.Col) - int(q.Col)}
}

// Manhattan returns the L1 distance between p and q.
func (p Point[T]) Manhattan(q Point[T]) int {
	return p.Sub(q).L1Norm()
}

// Neighbors yields p translated by each delta, skipping results outside dims.
func (p Point[T]) Neighbors(deltas []Delta, dims Dimensions[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for _, d := range deltas {
			if q, ok := p.AddChecked(d, dims); ok && !yield(q) {
				return
			}
		}
	}
}

// TraverseBy yields p, p+d, p+2d, ... while the points stay inside dims.
// The start point is always yielded. A zero delta yields p once.
func (p Point[T]) TraverseBy(d Delta, dims Dimensions[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if !yield(p) || d.IsZero() {
			return
		}
		for cur, ok := p.AddChecked(d, dims); ok; cur, ok = cur.AddChecked(d, dims) {
			if !yield(cur) {
				return
			}
		}
	}
}

// TraverseTo walks from p to q in the smallest lattice steps along the
// line between them, yielding both endpoints. When q is not reachable by
// whole steps the walk stops at the last point inside their bounding box.
func (p Point[T]) TraverseTo(q Point[T]) iter.Seq[Point[T]] {
	return p.TraverseBy(q.Sub(p).MinStep(), OfPointsInclusive(p, q))
}

// String renders p as "(row, col)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Convert changes the coordinate type of p.
func Convert[U, T constraints.Integer](p Point[T]) Point[U] {
	return Point[U]{Row: U(p.Row), Col: U(p.Col)}
}

// Neg returns -d.
func (d Delta) Neg() Delta { return Delta{Row: -d.Row, Col: -d.Col} }

// Plus returns d+o.
func (d Delta) Plus(o Delta) Delta { return Delta{Row: d.Row + o.Row, Col: d.Col + o.Col} }

// Scale returns k*d.
func (d Delta) Scale(k int) Delta { return Delta{Row: d.Row * k, Col: d.Col * k} }

// IsZero reports whether d is the zero offset.
func (d Delta) IsZero() bool { return d.Row == 0 && d.Col == 0 }

// L1Norm returns |Row| + |Col|.
func (d Delta) L1Norm() int { return abs(d.Row) + abs(d.Col) }

// ChebyshevNorm returns max(|Row|, |Col|).
func (d Delta) ChebyshevNorm() int { return max(abs(d.Row), abs(d.Col)) }

// MinStep divides d by the gcd of its components, giving the smallest
// lattice step in the same direction. The zero delta maps to itself.
func (d Delta) MinStep() Delta {
	g := numtheory.GCD(d.Row, d.Col)
	if g == 0 {
		return d
	}

	return Delta{Row: d.Row / g, Col: d.Col / g}
}

// String renders d as "(row, col)".
func (d Delta) String() string {
	return fmt.Sprintf("(%d, %d)", d.Row, d.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
