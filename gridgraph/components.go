package gridgraph

import (
	"github.com/katalvlaran/puzzlekit/disjointset"
	"github.com/katalvlaran/puzzlekit/grid"
)

// Components finds all contiguous regions of open cells according to the
// maze connectivity. Each component lists its points in row-major order;
// components are ordered by their first point.
//
// Time:   O(W·H·d·α(W·H)), where d = 4 or 8.
// Memory: O(W·H) for the disjoint set.
func (m *Maze) Components() [][]grid.Point[int] {
	cols := m.cells.Cols()
	dims := m.cells.Dimensions()
	set := disjointset.New(m.cells.Rows() * cols)
	index := func(p grid.Point[int]) int { return p.Row*cols + p.Col }

	for p, c := range m.cells.All() {
		if c != Open {
			continue // wall
		}
		for q := range p.Neighbors(m.offsets, dims) {
			if m.cells.At(q) == Open {
				_, _ = set.Union(index(p), index(q))
			}
		}
	}

	var comps [][]grid.Point[int]
	for _, members := range set.Sets() {
		first := grid.Pt(members[0]/cols, members[0]%cols)
		if m.cells.At(first) != Open {
			continue // walls stay singletons
		}
		comp := make([]grid.Point[int], len(members))
		for i, idx := range members {
			comp[i] = grid.Pt(idx/cols, idx%cols)
		}
		comps = append(comps, comp)
	}

	return comps
}
