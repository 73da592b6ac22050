package search

import "iter"

// ShortestPaths runs the engine from start. After each popped entry is
// recorded, stop (if non-nil) is consulted; the first key it accepts is
// returned together with the precedent map built so far. found is false when
// the frontier drained or the settle limit was reached first.
func ShortestPaths[K comparable, C Cost](g Graph[K, C], start K, stop StopFunc[K, C], opts ...Option) (pm *PrecedentMap[K, C], key K, found bool, err error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, key, false, err
	}

	var halt func(*item[K, C]) bool
	if stop != nil {
		halt = func(it *item[K, C]) bool {
			return stop(it.key, it.cost, r.pm)
		}
	}
	key, found, err = r.run(start, halt)
	if err != nil {
		return nil, key, false, err
	}

	return r.pm, key, found, nil
}

// ShortestPath returns the first key accepted by stop and one shortest path
// to it, start first.
func ShortestPath[K comparable, C Cost](g Graph[K, C], start K, stop StopFunc[K, C], opts ...Option) (K, []K, bool, error) {
	pm, key, found, err := ShortestPaths(g, start, stop, opts...)
	if err != nil || !found {
		return key, nil, false, err
	}
	path, _ := pm.ShortestPath(key)

	return key, path, true, nil
}

// ShortestDistance returns the first key accepted by stop and its shortest
// cost.
func ShortestDistance[K comparable, C Cost](g Graph[K, C], start K, stop StopFunc[K, C], opts ...Option) (K, C, bool, error) {
	var cost C
	pm, key, found, err := ShortestPaths(g, start, stop, opts...)
	if err != nil || !found {
		return key, cost, false, err
	}
	cost, _ = pm.ShortestCost(key)

	return key, cost, true, nil
}

// ShortestDistanceToAll drains the frontier and returns the shortest cost of
// every key reachable from start. Unreachable keys are absent.
func ShortestDistanceToAll[K comparable, C Cost](g Graph[K, C], start K, opts ...Option) (map[K]C, error) {
	pm, _, _, err := ShortestPaths[K, C](g, start, nil, opts...)
	if err != nil {
		return nil, err
	}

	return pm.Costs(), nil
}

// ShortestPathCount returns the number of distinct shortest paths from start
// to end. found is false when end is unreachable.
//
// The search stops as soon as no further shortest route to end can be
// popped: either end is popped again at a higher cost, or the frontier moved
// past the weight at which end was settled.
func ShortestPathCount[K comparable, C Cost](g Graph[K, C], start, end K, opts ...Option) (uint64, bool, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return 0, false, err
	}

	var bound C
	reached := false
	_, _, err = r.run(start, func(it *item[K, C]) bool {
		if reached && it.weight > bound {
			return true
		}
		if it.key != end {
			return false
		}
		if !reached {
			reached, bound = true, it.weight
			return false
		}
		best, _ := r.pm.ShortestCost(end)

		return best < it.cost
	})
	if err != nil {
		return 0, false, err
	}

	n, ok := r.pm.RouteCount(end)

	return n, ok, nil
}

// ShortestPathCountAll drains the frontier and returns, for every reachable
// key, the number of distinct shortest paths from start.
func ShortestPathCountAll[K comparable, C Cost](g Graph[K, C], start K, opts ...Option) (map[K]uint64, error) {
	pm, _, _, err := ShortestPaths[K, C](g, start, nil, opts...)
	if err != nil {
		return nil, err
	}

	return pm.RouteCounts(), nil
}

// AllPairsShortestPaths runs a full single-source search from every point
// and returns the costs keyed by source, then destination.
func AllPairsShortestPaths[K comparable, C Cost](g Graph[K, C], points iter.Seq[K], opts ...Option) (map[K]map[K]C, error) {
	out := make(map[K]map[K]C)
	for p := range points {
		if _, done := out[p]; done {
			continue
		}
		dist, err := ShortestDistanceToAll(g, p, opts...)
		if err != nil {
			return nil, err
		}
		out[p] = dist
	}

	return out, nil
}

// StopAt returns a StopFunc accepting the first of targets to be popped.
func StopAt[K comparable, C Cost](targets ...K) StopFunc[K, C] {
	set := make(map[K]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}

	return func(key K, _ C, _ *PrecedentMap[K, C]) bool {
		_, ok := set[key]
		return ok
	}
}
