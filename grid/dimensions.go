package grid

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Dimensions is the half-open box [MinRow,MaxRow) × [MinCol,MaxCol).
type Dimensions[T constraints.Integer] struct {
	MinRow, MaxRow T
	MinCol, MaxCol T
}

// Dims returns the box [0,rows) × [0,cols).
func Dims[T constraints.Integer](rows, cols T) Dimensions[T] {
	return Dimensions[T]{MaxRow: rows, MaxCol: cols}
}

// OfPointsInclusive returns the smallest box containing both a and b.
func OfPointsInclusive[T constraints.Integer](a, b Point[T]) Dimensions[T] {
	return Dimensions[T]{
		MinRow: min(a.Row, b.Row),
		MaxRow: max(a.Row, b.Row) + 1,
		MinCol: min(a.Col, b.Col),
		MaxCol: max(a.Col, b.Col) + 1,
	}
}

// Contains reports whether p lies inside d.
func (d Dimensions[T]) Contains(p Point[T]) bool {
	return d.MinRow <= p.Row && p.Row < d.MaxRow &&
		d.MinCol <= p.Col && p.Col < d.MaxCol
}

// Rows returns the number of rows in d.
func (d Dimensions[T]) Rows() T { return d.MaxRow - d.MinRow }

// Cols returns the number of columns in d.
func (d Dimensions[T]) Cols() T { return d.MaxCol - d.MinCol }

// Area returns Rows()*Cols().
func (d Dimensions[T]) Area() T { return d.Rows() * d.Cols() }

// IsEmpty reports whether d contains no points.
func (d Dimensions[T]) IsEmpty() bool {
	return d.MaxRow <= d.MinRow || d.MaxCol <= d.MinCol
}

// GrowToContain returns the smallest box containing d and p.
func (d Dimensions[T]) GrowToContain(p Point[T]) Dimensions[T] {
	return Dimensions[T]{
		MinRow: min(d.MinRow, p.Row),
		MaxRow: max(d.MaxRow, p.Row+1),
		MinCol: min(d.MinCol, p.Col),
		MaxCol: max(d.MaxCol, p.Col+1),
	}
}

// Points yields every point of d in row-major order.
func (d Dimensions[T]) Points() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for r := d.MinRow; r < d.MaxRow; r++ {
			for c := d.MinCol; c < d.MaxCol; c++ {
				if !yield(Point[T]{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// String renders d as "rows: (a - b), cols: (c - d)".
func (d Dimensions[T]) String() string {
	return fmt.Sprintf("rows: (%d - %d), cols: (%d - %d)", d.MinRow, d.MaxRow, d.MinCol, d.MaxCol)
}
