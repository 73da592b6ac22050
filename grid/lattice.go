package grid

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Lattice is a sparse, unbounded plane keyed by signed points. A missing
// key is an empty cell. The zero value is an empty lattice ready to use.
type Lattice[T any] struct {
	points map[Point[int]]T
}

// store returns the backing map, allocating it on first write.
func (l *Lattice[T]) store() map[Point[int]]T {
	if l.points == nil {
		l.points = make(map[Point[int]]T)
	}

	return l.points
}

// NewLattice returns an empty lattice.
func NewLattice[T any]() *Lattice[T] {
	return &Lattice[T]{points: make(map[Point[int]]T)}
}

// LatticeFrom builds a lattice from (point, value) pairs; later pairs win.
func LatticeFrom[T any](seq iter.Seq2[Point[int], T]) *Lattice[T] {
	l := NewLattice[T]()
	for p, v := range seq {
		l.points[p] = v
	}

	return l
}

// Len returns the number of occupied cells.
func (l *Lattice[T]) Len() int { return len(l.points) }

// Contains reports whether p is occupied.
func (l *Lattice[T]) Contains(p Point[int]) bool {
	_, ok := l.points[p]
	return ok
}

// Get returns the value at p.
func (l *Lattice[T]) Get(p Point[int]) (T, bool) {
	v, ok := l.points[p]
	return v, ok
}

// Update applies f to the value at p in place. It reports false if p is empty.
func (l *Lattice[T]) Update(p Point[int], f func(*T)) bool {
	cur, ok := l.points[p]
	if !ok {
		return false
	}
	f(&cur)
	l.points[p] = cur

	return true
}

// Set stores v at p and returns the previous value, if any.
func (l *Lattice[T]) Set(p Point[int], v T) (prev T, replaced bool) {
	prev, replaced = l.points[p]
	l.store()[p] = v

	return prev, replaced
}

// Delete empties p.
func (l *Lattice[T]) Delete(p Point[int]) { delete(l.points, p) }

// At returns the value at p and panics if p is empty.
func (l *Lattice[T]) At(p Point[int]) T {
	v, ok := l.points[p]
	if !ok {
		panic(fmt.Sprintf("grid: lattice has no value at %v", p))
	}

	return v
}

// All yields every occupied cell in unspecified order.
func (l *Lattice[T]) All() iter.Seq2[Point[int], T] { return maps.All(l.points) }

// BoundingBox returns the smallest box containing every occupied cell, or
// ok == false for an empty lattice.
func (l *Lattice[T]) BoundingBox() (Dimensions[int], bool) {
	var (
		box Dimensions[int]
		ok  bool
	)
	for p := range l.points {
		if !ok {
			box, ok = OfPointsInclusive(p, p), true
			continue
		}
		box = box.GrowToContain(p)
	}

	return box, ok
}

// IntersectsBlock reports whether any point of b is occupied.
func (l *Lattice[T]) IntersectsBlock(b Block[int]) bool {
	for p := range b.Points() {
		if l.Contains(p) {
			return true
		}
	}

	return false
}

// SetBlock stores v at every point of b.
func (l *Lattice[T]) SetBlock(b Block[int], v T) {
	points := l.store()
	for p := range b.Points() {
		points[p] = v
	}
}

// ApplyBlock runs f on every point of b, inserting def first where the
// cell is empty.
func (l *Lattice[T]) ApplyBlock(b Block[int], f func(v *T, p Point[int]), def T) {
	points := l.store()
	for p := range b.Points() {
		cur, ok := points[p]
		if !ok {
			cur = def
		}
		f(&cur, p)
		points[p] = cur
	}
}

// ApplyBlockWithDefault is ApplyBlock with the zero value as default.
func (l *Lattice[T]) ApplyBlockWithDefault(b Block[int], f func(v *T, p Point[int])) {
	var zero T
	l.ApplyBlock(b, f, zero)
}

// FindFunc returns some occupied point whose value satisfies pred.
func (l *Lattice[T]) FindFunc(pred func(T) bool) (Point[int], bool) {
	for p, v := range l.points {
		if pred(v) {
			return p, true
		}
	}

	return Point[int]{}, false
}

// FindIn returns some occupied point of l holding v.
func FindIn[T comparable](l *Lattice[T], v T) (Point[int], bool) {
	return l.FindFunc(func(x T) bool { return x == v })
}

// Render draws the bounding box of l, one line per row, using cell to
// format occupied points and empty for the rest.
func (l *Lattice[T]) Render(cell func(T) string, empty string) string {
	box, ok := l.BoundingBox()
	if !ok {
		return ""
	}
	var b strings.Builder
	for r := box.MinRow; r < box.MaxRow; r++ {
		if r > box.MinRow {
			b.WriteByte('\n')
		}
		for c := box.MinCol; c < box.MaxCol; c++ {
			if v, ok := l.points[Point[int]{Row: r, Col: c}]; ok {
				b.WriteString(cell(v))
			} else {
				b.WriteString(empty)
			}
		}
	}

	return b.String()
}
