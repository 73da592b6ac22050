package bfs

import (
	"fmt"
	"iter"
)

// queueItem pairs a key with its BFS depth.
type queueItem[K comparable] struct {
	key   K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph  Graph[K]
	opts   Options
	queue  []queueItem[K]
	parent map[K]K
	depth  map[K]int
	visit  func(K, int) bool
}

func newWalker[K comparable](g Graph[K], visit func(K, int) bool, opts []Option) (*walker[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[K]{
		graph:  g,
		opts:   o,
		parent: make(map[K]K),
		depth:  make(map[K]int),
		visit:  visit,
	}, nil
}

// Walk calls visit for every key reachable from start, in BFS order, with
// its depth. Returning false from visit ends the walk early.
func Walk[K comparable](g Graph[K], start K, visit func(key K, depth int) bool, opts ...Option) error {
	w, err := newWalker(g, visit, opts)
	if err != nil {
		return err
	}

	return w.run(start)
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrOptionViolation for bad options, or the context
// error if the search was canceled.
func BFS[K comparable](g Graph[K], start K, opts ...Option) (*Result[K], error) {
	var order []K
	w, err := newWalker(g, func(k K, _ int) bool {
		order = append(order, k)
		return true
	}, opts)
	if err != nil {
		return nil, err
	}
	if err := w.run(start); err != nil {
		return nil, err
	}

	return &Result[K]{Order: order, Depth: w.depth, Parent: w.parent}, nil
}

// run processes the queue until it is empty, visit declines or the context
// is done.
func (w *walker[K]) run(start K) error {
	w.depth[start] = 0
	w.queue = append(w.queue, queueItem[K]{key: start})

	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("bfs: %w", err)
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if !w.visit(item.key, item.depth) {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbour.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	adjacent := w.graph.Adjacent(item.key)
	if adjacent == nil {
		return
	}
	for nbr := range adjacent {
		if _, seen := w.depth[nbr]; seen {
			continue
		}
		w.depth[nbr] = next
		w.parent[nbr] = item.key
		w.queue = append(w.queue, queueItem[K]{key: nbr, depth: next})
	}
}

// filtered hides the edges keep rejects.
type filtered[K comparable] struct {
	g    Graph[K]
	keep func(cur, next K) bool
}

// Filter returns a view of g without the edges cur→next for which keep
// returns false.
func Filter[K comparable](g Graph[K], keep func(cur, next K) bool) Graph[K] {
	return filtered[K]{g: g, keep: keep}
}

func (f filtered[K]) Adjacent(key K) iter.Seq[K] {
	adjacent := f.g.Adjacent(key)
	if adjacent == nil {
		return nil
	}

	return func(yield func(K) bool) {
		for next := range adjacent {
			if f.keep(key, next) && !yield(next) {
				return
			}
		}
	}
}
