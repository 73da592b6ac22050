package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a dense, fixed-size, row-major 2D array. The invariant
// len(cells) == rows*cols holds for the lifetime of the grid.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New returns a rows×cols grid with every cell set to init.
// Negative sizes are treated as zero.
func New[T any](init T, rows, cols int) *Grid[T] {
	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([]T, rows*cols)
	for i := range cells {
		cells[i] = init
	}

	return &Grid[T]{rows: rows, cols: cols, cells: cells}
}

// FromSlice wraps values as a rows×cols grid. values is copied.
// Returns ErrSizeMismatch if len(values) != rows*cols.
func FromSlice[T any](values []T, rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 || len(values) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrSizeMismatch, len(values), rows, cols)
	}
	cells := make([]T, len(values))
	copy(cells, values)

	return &Grid[T]{rows: rows, cols: cols, cells: cells}, nil
}

// FromSeq collects exactly rows*cols values from seq. It stops pulling one
// value past the limit, so seq may be infinite.
// Returns ErrSizeMismatch if seq yields more or fewer.
func FromSeq[T any](seq iter.Seq[T], rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrSizeMismatch, rows, cols)
	}
	want := rows * cols
	cells := make([]T, 0, want)
	for v := range seq {
		cells = append(cells, v)
		if len(cells) > want {
			break
		}
	}

	return FromSlice(cells, rows, cols)
}

// FromRows builds a grid from nested rows.
// Returns ErrEmptyGrid for no rows and ErrNonRectangular for ragged rows.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	cells := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), cols)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{rows: len(rows), cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Dimensions returns [0,Rows) × [0,Cols).
func (g *Grid[T]) Dimensions() Dimensions[int] { return Dims(g.rows, g.cols) }

// Contains reports whether p is a valid index.
func (g *Grid[T]) Contains(p Point[int]) bool { return g.Dimensions().Contains(p) }

func (g *Grid[T]) index(p Point[int]) (int, error) {
	if !g.Contains(p) {
		return 0, &IndexOutOfBoundsError{Dimensions: g.Dimensions(), Attempted: p}
	}

	return p.Row*g.cols + p.Col, nil
}

// Get returns the value at p.
func (g *Grid[T]) Get(p Point[int]) (T, error) {
	i, err := g.index(p)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.cells[i], nil
}

// Ptr returns a pointer to the cell at p for in-place mutation.
func (g *Grid[T]) Ptr(p Point[int]) (*T, error) {
	i, err := g.index(p)
	if err != nil {
		return nil, err
	}

	return &g.cells[i], nil
}

// Set stores v at p.
func (g *Grid[T]) Set(p Point[int], v T) error {
	i, err := g.index(p)
	if err != nil {
		return err
	}
	g.cells[i] = v

	return nil
}

// At returns the value at p and panics if p is out of bounds.
func (g *Grid[T]) At(p Point[int]) T {
	v, err := g.Get(p)
	if err != nil {
		panic(err)
	}

	return v
}

// MustSet stores v at p and panics if p is out of bounds.
func (g *Grid[T]) MustSet(p Point[int], v T) {
	if err := g.Set(p, v); err != nil {
		panic(err)
	}
}

// Points yields every valid index in row-major order.
func (g *Grid[T]) Points() iter.Seq[Point[int]] {
	return g.Dimensions().Points()
}

// All yields every (point, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point[int], T] {
	return func(yield func(Point[int], T) bool) {
		for i, v := range g.cells {
			if !yield(Point[int]{Row: i / g.cols, Col: i % g.cols}, v) {
				return
			}
		}
	}
}

// Values returns a copy of the cells in row-major order.
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)

	return out
}

// FindFunc returns the first point, in row-major order, whose value
// satisfies pred.
func (g *Grid[T]) FindFunc(pred func(T) bool) (Point[int], bool) {
	for p, v := range g.All() {
		if pred(v) {
			return p, true
		}
	}

	return Point[int]{}, false
}

// Find returns the first point holding v.
func Find[T comparable](g *Grid[T], v T) (Point[int], bool) {
	return g.FindFunc(func(x T) bool { return x == v })
}

// AllRows yields each row as a sub-slice of the backing array.
// Mutating the yielded slices mutates the grid.
func (g *Grid[T]) AllRows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < g.rows; r++ {
			if !yield(r, g.cells[r*g.cols:(r+1)*g.cols:(r+1)*g.cols]) {
				return
			}
		}
	}
}

// AllCols yields a fresh copy of each column.
func (g *Grid[T]) AllCols() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for c := 0; c < g.cols; c++ {
			col := make([]T, g.rows)
			for r := range col {
				col[r] = g.cells[r*g.cols+c]
			}
			if !yield(c, col) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the cell storage.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: g.Values()}
}

// Transpose returns a new cols×rows grid with rows and columns swapped.
func (g *Grid[T]) Transpose() *Grid[T] {
	out := &Grid[T]{rows: g.cols, cols: g.rows, cells: make([]T, len(g.cells))}
	for p, v := range g.All() {
		out.cells[p.Col*out.cols+p.Row] = v
	}

	return out
}

// String renders each row on its own line, formatting cells with %v and
// no separator, which suits single-character cells.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for r, row := range g.AllRows() {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			fmt.Fprint(&b, v)
		}
	}

	return b.String()
}
