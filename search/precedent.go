package search

import "maps"

// precedent is the precedent map entry of one settled key.
type precedent[K comparable, C Cost] struct {
	cost     C
	first    K    // predecessor of the settling pop
	hasFirst bool // false for the start key
	origin   uint64
	from     []K
	mult     []uint64 // parallel edges from from[i]
}

func (p *precedent[K, C]) add(from K, hasFrom bool) {
	if !hasFrom {
		p.origin++
		return
	}
	for i, k := range p.from {
		if k == from {
			p.mult[i]++
			return
		}
	}
	p.from = append(p.from, from)
	p.mult = append(p.mult, 1)
}

type arc[K comparable] struct{ from, to K }

// PrecedentMap records, for every settled key, its shortest cost and the
// predecessors that reach it at that cost. Route counts are derived from the
// predecessor graph on demand, so a tied predecessor recorded after its
// successor still contributes.
type PrecedentMap[K comparable, C Cost] struct {
	entries map[K]*precedent[K, C]
	order   []K

	version uint64
	counted uint64
	counts  map[K]uint64
}

func newPrecedentMap[K comparable, C Cost]() *PrecedentMap[K, C] {
	return &PrecedentMap[K, C]{entries: make(map[K]*precedent[K, C])}
}

// record folds one popped frontier entry into the map. A new key is created
// with the entry's cost; an entry at the recorded cost adds its predecessor;
// a costlier entry is ignored.
func (pm *PrecedentMap[K, C]) record(key, from K, hasFrom bool, cost C) {
	p, ok := pm.entries[key]
	if !ok {
		p = &precedent[K, C]{cost: cost, first: from, hasFirst: hasFrom}
		pm.entries[key] = p
		pm.order = append(pm.order, key)
	} else if p.cost != cost {
		return
	}
	p.add(from, hasFrom)
	pm.version++
}

// routeCounts sums route counts over the predecessor graph in topological
// order. Edges that close a zero-cost cycle, found by a depth-first walk
// from the start along successor links, are left out.
func (pm *PrecedentMap[K, C]) routeCounts() map[K]uint64 {
	if pm.counts != nil && pm.counted == pm.version {
		return pm.counts
	}
	counts := make(map[K]uint64, len(pm.order))
	if len(pm.order) == 0 {
		pm.counts, pm.counted = counts, pm.version
		return counts
	}

	// 1) Successor lists, in settle order for determinism.
	next := make(map[K][]K, len(pm.order))
	for _, k := range pm.order {
		for _, from := range pm.entries[k].from {
			next[from] = append(next[from], k)
		}
	}

	// 2) Iterative DFS from the start; post-order reversed is topological.
	const (
		unseen = iota
		active
		done
	)
	type frame struct {
		key K
		i   int
	}
	state := make(map[K]int, len(pm.order))
	back := make(map[arc[K]]bool)
	post := make([]K, 0, len(pm.order))
	start := pm.order[0]
	state[start] = active
	stack := []frame{{key: start}}
	for len(stack) > 0 {
		top := len(stack) - 1
		k, i := stack[top].key, stack[top].i
		if i < len(next[k]) {
			stack[top].i++
			c := next[k][i]
			switch state[c] {
			case unseen:
				state[c] = active
				stack = append(stack, frame{key: c})
			case active:
				back[arc[K]{from: k, to: c}] = true
			}
			continue
		}
		state[k] = done
		post = append(post, k)
		stack = stack[:top]
	}

	// 3) Accumulate.
	for i := len(post) - 1; i >= 0; i-- {
		k := post[i]
		p := pm.entries[k]
		n := p.origin
		for j, from := range p.from {
			if !back[arc[K]{from: from, to: k}] {
				n += p.mult[j] * counts[from]
			}
		}
		counts[k] = n
	}
	pm.counts, pm.counted = counts, pm.version

	return counts
}

// Len returns the number of settled keys.
func (pm *PrecedentMap[K, C]) Len() int { return len(pm.order) }

// Contains reports whether key has been settled.
func (pm *PrecedentMap[K, C]) Contains(key K) bool {
	_, ok := pm.entries[key]

	return ok
}

// ShortestCost returns the shortest cost recorded for key.
func (pm *PrecedentMap[K, C]) ShortestCost(key K) (C, bool) {
	p, ok := pm.entries[key]
	if !ok {
		var zero C
		return zero, false
	}

	return p.cost, true
}

// Predecessors returns the keys from which key is reached at its shortest
// cost, earliest recorded first. The start key has none unless a zero-cost
// cycle leads back to it.
func (pm *PrecedentMap[K, C]) Predecessors(key K) ([]K, bool) {
	p, ok := pm.entries[key]
	if !ok {
		return nil, false
	}

	out := make([]K, len(p.from))
	copy(out, p.from)

	return out, true
}

// RouteCount returns the number of distinct shortest routes from the start
// to key that the search has recorded.
func (pm *PrecedentMap[K, C]) RouteCount(key K) (uint64, bool) {
	if !pm.Contains(key) {
		return 0, false
	}

	return pm.routeCounts()[key], true
}

// ShortestPath returns one shortest path from the start to key, start first.
// At every step it follows the predecessor that settled the key.
func (pm *PrecedentMap[K, C]) ShortestPath(key K) ([]K, bool) {
	p, ok := pm.entries[key]
	if !ok {
		return nil, false
	}

	path := []K{key}
	for p.hasFirst {
		path = append(path, p.first)
		p = pm.entries[p.first]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// AllPrecedents returns every key lying on at least one shortest path from
// the start to key, key included, in breadth-first order from key.
func (pm *PrecedentMap[K, C]) AllPrecedents(key K) []K {
	if !pm.Contains(key) {
		return nil
	}

	seen := map[K]struct{}{key: {}}
	queue := []K{key}
	for i := 0; i < len(queue); i++ {
		for _, prev := range pm.entries[queue[i]].from {
			if _, dup := seen[prev]; dup {
				continue
			}
			seen[prev] = struct{}{}
			queue = append(queue, prev)
		}
	}

	return queue
}

// Costs returns the shortest cost of every settled key.
func (pm *PrecedentMap[K, C]) Costs() map[K]C {
	out := make(map[K]C, len(pm.entries))
	for k, p := range pm.entries {
		out[k] = p.cost
	}

	return out
}

// RouteCounts returns the shortest route count of every settled key.
func (pm *PrecedentMap[K, C]) RouteCounts() map[K]uint64 {
	return maps.Clone(pm.routeCounts())
}

// Settled returns the settled keys in the order they were settled.
func (pm *PrecedentMap[K, C]) Settled() []K {
	out := make([]K, len(pm.order))
	copy(out, pm.order)

	return out
}
