package gridgraph

import (
	"iter"

	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/search"
)

// breachGraph lets a walk pass through walls: entering an open cell is free,
// entering a wall costs 1.
type breachGraph struct {
	m *Maze
}

func (b breachGraph) Adjacent(p grid.Point[int]) iter.Seq[grid.Point[int]] {
	return p.Neighbors(b.m.offsets, b.m.cells.Dimensions())
}

func (b breachGraph) Cost(_, q grid.Point[int]) (int, bool) {
	c, err := b.m.cells.Get(q)
	if err != nil {
		return 0, false
	}
	if c == Wall {
		return 1, true
	}

	return 0, true
}

// WallsToBreak finds the fewest wall cells that must be removed to connect
// from and to. The returned path includes both ends and every wall crossed.
//
// Behavior:
//  1. Validate both ends are open cells.
//  2. Search with cost 0 into open cells and cost 1 into walls.
//  3. Stop when to is settled and rebuild the path from the precedent map.
func (m *Maze) WallsToBreak(from, to grid.Point[int], opts ...search.Option) (walls int, path []grid.Point[int], err error) {
	if err = m.checkOpen(from, to); err != nil {
		return 0, nil, err
	}
	pm, _, _, err := search.ShortestPaths(breachGraph{m: m}, from, search.StopAt[grid.Point[int], int](to), opts...)
	if err != nil {
		return 0, nil, err
	}
	// Every cell is reachable once walls can be crossed.
	walls, _ = pm.ShortestCost(to)
	path, _ = pm.ShortestPath(to)

	return walls, path, nil
}
