package gridgraph

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/search"
)

// State is a position together with the heading it faces.
type State struct {
	Pos    grid.Point[int]
	Facing grid.Direction
}

// String renders s as "(r, c) Facing".
func (s State) String() string { return fmt.Sprintf("%v %v", s.Pos, s.Facing) }

// TurningMaze walks a Maze one heading at a time: stepping forward onto an
// open cell costs the maze's StepCost, a quarter turn in place costs
// TurnCost. Diagonal connectivity of the underlying maze is ignored.
type TurningMaze struct {
	maze     *Maze
	turnCost int
}

var (
	_ search.Graph[State, int]     = (*TurningMaze)(nil)
	_ search.Heuristic[State, int] = (*TurningMaze)(nil)
)

// NewTurningMaze wraps m. The goal heuristic, if any, is taken from m.
func NewTurningMaze(m *Maze, turnCost int) (*TurningMaze, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}
	if turnCost < 0 {
		return nil, fmt.Errorf("%w: turn cost %d", ErrBadCost, turnCost)
	}

	return &TurningMaze{maze: m, turnCost: turnCost}, nil
}

// Maze returns the underlying maze.
func (t *TurningMaze) Maze() *Maze { return t.maze }

// TurnCost returns the cost of a quarter turn.
func (t *TurningMaze) TurnCost() int { return t.turnCost }

// Adjacent yields the state one step ahead, when open, then both quarter
// turns.
func (t *TurningMaze) Adjacent(s State) iter.Seq[State] {
	if !t.maze.IsOpen(s.Pos) {
		return nil
	}

	return func(yield func(State) bool) {
		if ahead := s.Pos.Add(s.Facing.Delta()); t.maze.IsOpen(ahead) {
			if !yield(State{Pos: ahead, Facing: s.Facing}) {
				return
			}
		}
		if !yield(State{Pos: s.Pos, Facing: s.Facing.RotateLeft()}) {
			return
		}
		yield(State{Pos: s.Pos, Facing: s.Facing.RotateRight()})
	}
}

// Cost prices a forward step or a quarter turn; anything else is impassable.
func (t *TurningMaze) Cost(a, b State) (int, bool) {
	switch {
	case a.Pos == b.Pos && (b.Facing == a.Facing.RotateLeft() || b.Facing == a.Facing.RotateRight()):
		return t.turnCost, true
	case a.Facing == b.Facing && a.Pos.Add(a.Facing.Delta()) == b.Pos && t.maze.IsOpen(b.Pos):
		return t.maze.options.StepCost, true
	}

	return 0, false
}

// CostToWeight defers to the maze's goal estimate.
func (t *TurningMaze) CostToWeight(s State, c int) int {
	return t.maze.CostToWeight(s.Pos, c)
}

// Toward returns a copy of t that estimates the remaining cost to goal.
func (t *TurningMaze) Toward(goal grid.Point[int]) *TurningMaze {
	return &TurningMaze{maze: t.maze.Toward(goal), turnCost: t.turnCost}
}

// Solve finds a cheapest walk from from to any heading at to.
func (t *TurningMaze) Solve(from State, to grid.Point[int], opts ...search.Option) (cost int, path []State, ok bool, err error) {
	if err = t.maze.checkOpen(from.Pos, to); err != nil {
		return 0, nil, false, err
	}
	arrived := func(s State, _ int, _ *search.PrecedentMap[State, int]) bool {
		return s.Pos == to
	}
	pm, end, ok, err := search.ShortestPaths(t.Toward(to), from, arrived, opts...)
	if err != nil || !ok {
		return 0, nil, false, err
	}
	cost, _ = pm.ShortestCost(end)
	path, _ = pm.ShortestPath(end)

	return cost, path, true, nil
}

// BestPathTiles returns every cell lying on at least one cheapest walk from
// from to to, in row-major order, together with the cheapest cost.
//
// The search runs without a heuristic so that costs pop in order, and stops
// at the first entry dearer than the best arrival at to.
func (t *TurningMaze) BestPathTiles(from State, to grid.Point[int], opts ...search.Option) (tiles []grid.Point[int], best int, ok bool, err error) {
	if err = t.maze.checkOpen(from.Pos, to); err != nil {
		return nil, 0, false, err
	}
	plain := &TurningMaze{maze: t.maze.plain(), turnCost: t.turnCost}
	stop := func(s State, c int, _ *search.PrecedentMap[State, int]) bool {
		if ok && c > best {
			return true
		}
		if s.Pos == to && !ok {
			best, ok = c, true
		}
		return false
	}
	pm, _, _, err := search.ShortestPaths(plain, from, stop, opts...)
	if err != nil || !ok {
		return nil, 0, false, err
	}

	seen := make(map[grid.Point[int]]struct{})
	for _, d := range grid.Directions() {
		end := State{Pos: to, Facing: d}
		if c, found := pm.ShortestCost(end); !found || c != best {
			continue
		}
		for _, s := range pm.AllPrecedents(end) {
			if _, dup := seen[s.Pos]; !dup {
				seen[s.Pos] = struct{}{}
				tiles = append(tiles, s.Pos)
			}
		}
	}
	slices.SortFunc(tiles, func(a, b grid.Point[int]) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})

	return tiles, best, true, nil
}
