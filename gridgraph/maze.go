package gridgraph

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/puzzlekit/bfs"
	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/parse"
	"github.com/katalvlaran/puzzlekit/search"
)

// Maze is a position graph over a rectangular grid of cells. Moving onto an
// open neighbour costs StepCost; walls and cells outside the grid cannot be
// entered. A Maze built with WithGoal is searched A*-style.
type Maze struct {
	cells   *grid.Grid[Cell]
	options Options
	offsets []grid.Delta
	marks   map[rune][]grid.Point[int]
}

var (
	_ search.Graph[grid.Point[int], int]     = (*Maze)(nil)
	_ search.Heuristic[grid.Point[int], int] = (*Maze)(nil)
)

// NewMaze wraps cells. The grid is shared, not copied.
// Returns ErrEmptyGrid if cells is nil or has no rows or no columns.
func NewMaze(cells *grid.Grid[Cell], opts ...Option) (*Maze, error) {
	if cells == nil || cells.Rows() == 0 || cells.Cols() == 0 {
		return nil, ErrEmptyGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Maze{
		cells:   cells,
		options: cfg,
		offsets: cfg.Conn.offsets(),
		marks:   make(map[rune][]grid.Point[int]),
	}, nil
}

var mazeCell = parse.Chars(func(r rune) bool { return r != '\n' && r != '\r' })

// ParseMaze reads one row per line. The wall rune (default '#') becomes
// Wall, every other rune Open; runes other than the wall and '.' are
// remembered as markers, see Marker.
// Returns ErrEmptyGrid for empty text and ErrNonRectangular for ragged rows.
func ParseMaze(text string, opts ...Option) (*Maze, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	runes, err := parse.GridOf(mazeCell, "", "\n").Parse(text).Finish()
	if err != nil {
		switch {
		case errors.Is(err, grid.ErrEmptyGrid):
			return nil, ErrEmptyGrid
		case errors.Is(err, grid.ErrNonRectangular):
			return nil, fmt.Errorf("%w: %w", ErrNonRectangular, err)
		}
		return nil, fmt.Errorf("gridgraph: %w", err)
	}

	m, err := NewMaze(grid.New(Open, runes.Rows(), runes.Cols()), opts...)
	if err != nil {
		return nil, err
	}
	for p, r := range runes.All() {
		switch r {
		case m.options.Wall:
			m.cells.MustSet(p, Wall)
		case '.':
		default:
			m.marks[r] = append(m.marks[r], p)
		}
	}

	return m, nil
}

// Grid returns the underlying cells.
func (m *Maze) Grid() *grid.Grid[Cell] { return m.cells }

// Options returns the options the maze was built with.
func (m *Maze) Options() Options { return m.options }

// IsOpen reports whether p lies inside the maze on an open cell.
func (m *Maze) IsOpen(p grid.Point[int]) bool {
	c, err := m.cells.Get(p)

	return err == nil && c == Open
}

// Marker returns the first position, in row-major order, of marker r.
func (m *Maze) Marker(r rune) (grid.Point[int], bool) {
	ps := m.marks[r]
	if len(ps) == 0 {
		return grid.Point[int]{}, false
	}

	return ps[0], true
}

// Markers returns every position of marker r in row-major order.
func (m *Maze) Markers(r rune) []grid.Point[int] {
	return append([]grid.Point[int](nil), m.marks[r]...)
}

// Adjacent yields the open neighbours of p. A wall or an outside point is a
// dead end.
func (m *Maze) Adjacent(p grid.Point[int]) iter.Seq[grid.Point[int]] {
	if !m.IsOpen(p) {
		return nil
	}
	dims := m.cells.Dimensions()

	return func(yield func(grid.Point[int]) bool) {
		for q := range p.Neighbors(m.offsets, dims) {
			if m.cells.At(q) == Open && !yield(q) {
				return
			}
		}
	}
}

// Cost returns StepCost when b is an open neighbour of a.
func (m *Maze) Cost(a, b grid.Point[int]) (int, bool) {
	if !m.IsOpen(b) || !m.neighbours(a, b) {
		return 0, false
	}

	return m.options.StepCost, true
}

func (m *Maze) neighbours(a, b grid.Point[int]) bool {
	d := b.Sub(a)
	if m.options.Conn == Conn8 {
		return d.ChebyshevNorm() == 1
	}

	return d.L1Norm() == 1
}

// CostToWeight adds the distance estimate to the goal, if one is set.
func (m *Maze) CostToWeight(p grid.Point[int], c int) int {
	if !m.options.HasGoal {
		return c
	}

	return c + m.estimate(p)
}

func (m *Maze) estimate(p grid.Point[int]) int {
	d := m.options.Goal.Sub(p)
	if m.options.Conn == Conn8 {
		return d.ChebyshevNorm() * m.options.StepCost
	}

	return d.L1Norm() * m.options.StepCost
}

// Toward returns a copy of m that estimates the remaining cost to goal.
func (m *Maze) Toward(goal grid.Point[int]) *Maze {
	c := *m
	c.options.Goal, c.options.HasGoal = goal, true

	return &c
}

// plain returns a copy of m without a goal heuristic.
func (m *Maze) plain() *Maze {
	c := *m
	c.options.HasGoal = false

	return &c
}

func (m *Maze) checkOpen(ps ...grid.Point[int]) error {
	for _, p := range ps {
		if !m.IsOpen(p) {
			return fmt.Errorf("%w: %v", ErrOutOfMaze, p)
		}
	}

	return nil
}

// Solve finds a cheapest walk from from to to. ok is false when to cannot be
// reached. Returns ErrOutOfMaze if either end is not an open cell.
func (m *Maze) Solve(from, to grid.Point[int], opts ...search.Option) (cost int, path []grid.Point[int], ok bool, err error) {
	if err = m.checkOpen(from, to); err != nil {
		return 0, nil, false, err
	}
	pm, _, ok, err := search.ShortestPaths(m.Toward(to), from, search.StopAt[grid.Point[int], int](to), opts...)
	if err != nil || !ok {
		return 0, nil, false, err
	}
	cost, _ = pm.ShortestCost(to)
	path, _ = pm.ShortestPath(to)

	return cost, path, true, nil
}

// Distances returns the cost from from to every reachable open cell.
func (m *Maze) Distances(from grid.Point[int], opts ...search.Option) (map[grid.Point[int]]int, error) {
	if err := m.checkOpen(from); err != nil {
		return nil, err
	}

	return search.ShortestDistanceToAll[grid.Point[int], int](m.plain(), from, opts...)
}

// Within returns the step count to every open cell reachable from from in at
// most steps moves, ignoring StepCost. steps == 0 means no limit.
func (m *Maze) Within(from grid.Point[int], steps int, opts ...bfs.Option) (map[grid.Point[int]]int, error) {
	if err := m.checkOpen(from); err != nil {
		return nil, err
	}
	res, err := bfs.BFS[grid.Point[int]](m, from, append([]bfs.Option{bfs.WithMaxDepth(steps)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// CountShortestPaths returns how many distinct cheapest walks lead from from
// to to.
func (m *Maze) CountShortestPaths(from, to grid.Point[int], opts ...search.Option) (uint64, bool, error) {
	if err := m.checkOpen(from, to); err != nil {
		return 0, false, err
	}

	return search.ShortestPathCount[grid.Point[int], int](m.Toward(to), from, to, opts...)
}

// String renders the maze one row per line, walls as '#' and open cells as '.'.
func (m *Maze) String() string { return m.cells.String() }
