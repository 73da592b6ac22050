package spanning

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/puzzlekit/disjointset"
	"github.com/katalvlaran/puzzlekit/search"
)

// Merges sweeps edges in ascending weight and yields every edge that joins
// two different components, together with the number of components left
// afterwards. Endpoints missing from vertices are added as they appear.
// Self-loops never merge anything and are skipped.
func Merges[K comparable, C search.Cost](vertices []K, edges []Edge[K, C]) iter.Seq2[Edge[K, C], int] {
	return func(yield func(Edge[K, C], int) bool) {
		// 1) Singletons for every known vertex and endpoint.
		ds := disjointset.NewHashed(vertices...)
		for _, e := range edges {
			ds.Insert(e.From)
			ds.Insert(e.To)
		}

		// 2) Stable sort keeps input order among equal weights.
		sorted := slices.Clone(edges)
		slices.SortStableFunc(sorted, func(a, b Edge[K, C]) int {
			return cmp.Compare(a.Weight, b.Weight)
		})

		// 3) Accept each edge that joins two components.
		components := ds.Count()
		for _, e := range sorted {
			if components == 1 {
				return
			}
			merged, _ := ds.Union(e.From, e.To)
			if !merged {
				continue
			}
			components--
			if !yield(e, components) {
				return
			}
		}
	}
}

// Kruskal returns the edges of a minimum spanning tree over vertices and the
// endpoints of edges, and its total weight.
// Returns ErrDisconnected if there are no vertices or more than one
// component remains.
func Kruskal[K comparable, C search.Cost](vertices []K, edges []Edge[K, C]) ([]Edge[K, C], C, error) {
	var total C
	seen := make(map[K]struct{}, len(vertices))
	for _, v := range vertices {
		seen[v] = struct{}{}
	}
	for _, e := range edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	if len(seen) == 0 {
		return nil, total, ErrDisconnected
	}

	tree := make([]Edge[K, C], 0, len(seen)-1)
	left := len(seen)
	for e, components := range Merges(vertices, edges) {
		tree = append(tree, e)
		total += e.Weight
		left = components
	}
	if left != 1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
