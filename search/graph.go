package search

import "iter"

// Graph is the capability the engine searches over.
//
// Adjacent may return nil for a dead end. Cost reports false for an edge that
// cannot be taken, in which case the neighbour is skipped.
type Graph[K comparable, C Cost] interface {
	Adjacent(k K) iter.Seq[K]
	Cost(a, b K) (C, bool)
}

// Heuristic is implemented by graphs searched A*-style. CostToWeight maps
// the accumulated cost of reaching k to its frontier priority; for an
// admissible, consistent estimate h it is c + h(k).
type Heuristic[K comparable, C Cost] interface {
	CostToWeight(k K, c C) C
}

type heuristicGraph[K comparable, C Cost] struct {
	Graph[K, C]
	estimate func(K) C
}

func (h heuristicGraph[K, C]) CostToWeight(k K, c C) C {
	return c + h.estimate(k)
}

// WithHeuristic wraps g so that it is searched with weight c + estimate(k).
// estimate must never overestimate the remaining cost and must be consistent
// for the precedent map to hold every shortest route.
func WithHeuristic[K comparable, C Cost](g Graph[K, C], estimate func(K) C) Graph[K, C] {
	return heuristicGraph[K, C]{Graph: g, estimate: estimate}
}

// MapGraph is a directed adjacency map: m[a][b] is the cost of a → b.
// Neighbours are visited in map iteration order.
type MapGraph[K comparable, C Cost] map[K]map[K]C

var _ Graph[string, int] = MapGraph[string, int]{}

// AddEdge sets the cost of a → b, replacing any previous cost.
func (m MapGraph[K, C]) AddEdge(a, b K, c C) {
	edges, ok := m[a]
	if !ok {
		edges = make(map[K]C)
		m[a] = edges
	}
	edges[b] = c
}

// AddUndirected sets the cost of both a → b and b → a.
func (m MapGraph[K, C]) AddUndirected(a, b K, c C) {
	m.AddEdge(a, b, c)
	m.AddEdge(b, a, c)
}

// Adjacent returns the keys reachable from k in one edge.
func (m MapGraph[K, C]) Adjacent(k K) iter.Seq[K] {
	edges, ok := m[k]
	if !ok {
		return nil
	}

	return func(yield func(K) bool) {
		for b := range edges {
			if !yield(b) {
				return
			}
		}
	}
}

// Cost returns the cost of a → b.
func (m MapGraph[K, C]) Cost(a, b K) (C, bool) {
	c, ok := m[a][b]

	return c, ok
}
