package disjointset

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Hashed is a union-find over arbitrary comparable keys.
type Hashed[T comparable] struct {
	inner *Set
	index map[T]int
	keys  []T
}

var _ DisjointSet[string] = (*Hashed[string])(nil)

// NewHashed returns a set holding each of items as a singleton.
func NewHashed[T comparable](items ...T) *Hashed[T] {
	h := &Hashed[T]{inner: New(0), index: make(map[T]int, len(items))}
	for _, it := range items {
		h.Insert(it)
	}

	return h
}

// Insert adds item as a singleton. It reports false if item was present.
func (h *Hashed[T]) Insert(item T) bool {
	if _, ok := h.index[item]; ok {
		return false
	}
	h.index[item] = h.inner.Add()
	h.keys = append(h.keys, item)

	return true
}

// Contains reports whether item was inserted.
func (h *Hashed[T]) Contains(item T) bool {
	_, ok := h.index[item]
	return ok
}

func (h *Hashed[T]) lookup(a, b T) (int, int, error) {
	ia, ok := h.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownElement, a)
	}
	ib, ok := h.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownElement, b)
	}

	return ia, ib, nil
}

// Union merges the sets holding a and b.
func (h *Hashed[T]) Union(a, b T) (bool, error) {
	ia, ib, err := h.lookup(a, b)
	if err != nil {
		return false, err
	}

	return h.inner.Union(ia, ib)
}

// Connected reports whether a and b share a set.
func (h *Hashed[T]) Connected(a, b T) (bool, error) {
	ia, ib, err := h.lookup(a, b)
	if err != nil {
		return false, err
	}

	return h.inner.Connected(ia, ib)
}

// Len returns the number of elements.
func (h *Hashed[T]) Len() int { return h.inner.Len() }

// Count returns the number of disjoint sets.
func (h *Hashed[T]) Count() int { return h.inner.Count() }

// Sets returns every set with members in insertion order.
func (h *Hashed[T]) Sets() [][]T { return setsOf(h.inner, h.keys) }

// Ordered is a Hashed set whose Sets output is sorted by key.
type Ordered[T constraints.Ordered] struct {
	Hashed[T]
}

var _ DisjointSet[int] = (*Ordered[int])(nil)

// NewOrdered returns a set holding each of items as a singleton.
func NewOrdered[T constraints.Ordered](items ...T) *Ordered[T] {
	return &Ordered[T]{Hashed: *NewHashed(items...)}
}

// Sets returns every set with ascending members, ordered by smallest member.
func (o *Ordered[T]) Sets() [][]T {
	out := o.Hashed.Sets()
	for _, s := range out {
		slices.Sort(s)
	}
	slices.SortFunc(out, func(a, b []T) int {
		switch {
		case a[0] < b[0]:
			return -1
		case a[0] > b[0]:
			return 1
		}
		return 0
	})

	return out
}
