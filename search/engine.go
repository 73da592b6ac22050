package search

import (
	"container/heap"
	"fmt"
	"log/slog"
)

// item is one frontier entry: key reached from `from` at accumulated cost.
type item[K comparable, C Cost] struct {
	key     K
	from    K
	hasFrom bool
	cost    C
	weight  C
	seq     uint64
}

// frontier is a min-heap of *item ordered by weight, then cost, then push
// order. Stale entries stay in the heap and are recognised on pop.
type frontier[K comparable, C Cost] []*item[K, C]

func (f frontier[K, C]) Len() int { return len(f) }

func (f frontier[K, C]) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}

	return a.seq < b.seq
}

func (f frontier[K, C]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[K, C]) Push(x any) { *f = append(*f, x.(*item[K, C])) }

func (f *frontier[K, C]) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}

// runner holds the mutable state of a single search.
type runner[K comparable, C Cost] struct {
	g       Graph[K, C]
	h       Heuristic[K, C] // nil: weight == cost
	options Options
	log     *slog.Logger
	pm      *PrecedentMap[K, C]
	pq      frontier[K, C]
	seq     uint64
	settled int
}

func newRunner[K comparable, C Cost](g Graph[K, C], opts []Option) (*runner[K, C], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := buildOptions(opts)
	h, _ := g.(Heuristic[K, C])

	return &runner[K, C]{
		g:       g,
		h:       h,
		options: cfg,
		log:     cfg.Logger,
		pm:      newPrecedentMap[K, C](),
	}, nil
}

func (r *runner[K, C]) weight(k K, c C) C {
	if r.h == nil {
		return c
	}

	return r.h.CostToWeight(k, c)
}

func (r *runner[K, C]) push(key, from K, hasFrom bool, cost C) {
	r.seq++
	heap.Push(&r.pq, &item[K, C]{
		key:     key,
		from:    from,
		hasFrom: hasFrom,
		cost:    cost,
		weight:  r.weight(key, cost),
		seq:     r.seq,
	})
}

// run searches from start until stop reports true, the frontier drains, the
// settle limit is hit or the context is done. It returns the terminal key.
func (r *runner[K, C]) run(start K, stop func(*item[K, C]) bool) (K, bool, error) {
	var zero K
	var cost C
	r.push(start, zero, false, cost)
	r.log.Debug("search started", slog.Any("start", start), slog.Bool("heuristic", r.h != nil))

	for r.pq.Len() > 0 {
		// 1) Honour cancellation between pops.
		if err := r.options.Context.Err(); err != nil {
			return zero, false, fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		// 2) Pop the lightest entry.
		it := heap.Pop(&r.pq).(*item[K, C])

		// 3) First pop of a key settles it and expands its neighbours.
		if !r.pm.Contains(it.key) {
			if r.options.MaxSettled > 0 && r.settled >= r.options.MaxSettled {
				r.log.Debug("search settle limit reached", slog.Int("settled", r.settled))
				return zero, false, nil
			}
			r.settled++
			if err := r.expand(it); err != nil {
				return zero, false, err
			}
		}

		// 4) Record the route, then let the caller decide whether to stop.
		r.pm.record(it.key, it.from, it.hasFrom, it.cost)
		if stop != nil && stop(it) {
			r.log.Debug("search stopped",
				slog.Any("key", it.key),
				slog.Any("cost", it.cost),
				slog.Int("settled", r.settled),
				slog.Int("frontier", r.pq.Len()),
			)
			return it.key, true, nil
		}
	}

	r.log.Debug("search exhausted", slog.Int("settled", r.settled))

	return zero, false, nil
}

// expand pushes every passable neighbour of a freshly settled key.
func (r *runner[K, C]) expand(it *item[K, C]) error {
	adjacent := r.g.Adjacent(it.key)
	if adjacent == nil {
		return nil
	}
	for next := range adjacent {
		c, ok := r.g.Cost(it.key, next)
		if !ok {
			continue
		}
		if r.options.CheckCost && c < 0 {
			return fmt.Errorf("%w: %v -> %v costs %v", ErrNegativeCost, it.key, next, c)
		}
		r.push(next, it.key, true, it.cost+c)
	}

	return nil
}
