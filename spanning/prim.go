package spanning

import (
	"container/heap"

	"github.com/katalvlaran/puzzlekit/search"
)

type candidate[K comparable, C search.Cost] struct {
	edge Edge[K, C]
	seq  int
}

// candidates is a min-heap of edges ordered by weight, then discovery.
type candidates[K comparable, C search.Cost] []candidate[K, C]

func (h candidates[K, C]) Len() int { return len(h) }

func (h candidates[K, C]) Less(i, j int) bool {
	if h[i].edge.Weight != h[j].edge.Weight {
		return h[i].edge.Weight < h[j].edge.Weight
	}

	return h[i].seq < h[j].seq
}

func (h candidates[K, C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidates[K, C]) Push(x any) { *h = append(*h, x.(candidate[K, C])) }

func (h *candidates[K, C]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Prim grows a minimum spanning tree of the part of g reachable from root.
// Edges without a cost are ignored.
//
// Steps:
//  1. Mark root as in the tree and push its outgoing edges.
//  2. Pop the lightest edge; skip it if its head is already in the tree.
//  3. Otherwise add it and push the new vertex's edges to unvisited keys.
func Prim[K comparable, C search.Cost](g search.Graph[K, C], root K) ([]Edge[K, C], C, error) {
	var total C
	if g == nil {
		return nil, total, ErrNilGraph
	}

	visited := map[K]struct{}{}
	pq := &candidates[K, C]{}
	seq := 0
	visit := func(u K) {
		visited[u] = struct{}{}
		adjacent := g.Adjacent(u)
		if adjacent == nil {
			return
		}
		for v := range adjacent {
			if _, in := visited[v]; in {
				continue
			}
			w, ok := g.Cost(u, v)
			if !ok {
				continue
			}
			seq++
			heap.Push(pq, candidate[K, C]{edge: Edge[K, C]{From: u, To: v, Weight: w}, seq: seq})
		}
	}

	visit(root)
	var tree []Edge[K, C]
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate[K, C])
		if _, in := visited[c.edge.To]; in {
			continue
		}
		tree = append(tree, c.edge)
		total += c.edge.Weight
		visit(c.edge.To)
	}

	return tree, total, nil
}
