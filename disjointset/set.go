package disjointset

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates an element that was never added.
var ErrUnknownElement = errors.New("disjointset: unknown element")

// DisjointSet is implemented by Set, Hashed and Ordered.
type DisjointSet[T any] interface {
	Union(a, b T) (bool, error)
	Connected(a, b T) (bool, error)
	Len() int
	Sets() [][]T
}

type node struct {
	parent int
	rank   uint32
}

// Set is a union-find over the dense indices 0..Len()-1.
type Set struct {
	nodes []node
}

var _ DisjointSet[int] = (*Set)(nil)

// New returns a set of n singletons.
func New(n int) *Set {
	s := &Set{nodes: make([]node, 0, max(n, 0))}
	for range n {
		s.Add()
	}

	return s
}

// Add appends a new singleton and returns its index.
func (s *Set) Add() int {
	i := len(s.nodes)
	s.nodes = append(s.nodes, node{parent: i})

	return i
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.nodes) }

// Find returns the representative of i, halving the path on the way.
func (s *Set) Find(i int) (int, error) {
	if i < 0 || i >= len(s.nodes) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownElement, i)
	}
	for s.nodes[i].parent != i {
		s.nodes[i].parent = s.nodes[s.nodes[i].parent].parent
		i = s.nodes[i].parent
	}

	return i, nil
}

// Union merges the sets holding a and b. It reports false when they were
// already joined.
func (s *Set) Union(a, b int) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	switch {
	case s.nodes[ra].rank < s.nodes[rb].rank:
		s.nodes[ra].parent = rb
	case s.nodes[ra].rank > s.nodes[rb].rank:
		s.nodes[rb].parent = ra
	default:
		s.nodes[ra].parent = rb
		s.nodes[rb].rank++
	}

	return true, nil
}

// Connected reports whether a and b share a set.
func (s *Set) Connected(a, b int) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Count returns the number of disjoint sets.
func (s *Set) Count() int {
	n := 0
	for i, nd := range s.nodes {
		if nd.parent == i {
			n++
		}
	}

	return n
}

// Sets returns every set as an ascending slice of indices, ordered by
// smallest member.
func (s *Set) Sets() [][]int {
	byRoot := make(map[int]int, len(s.nodes))
	var out [][]int
	for i := range s.nodes {
		r, _ := s.Find(i)
		k, ok := byRoot[r]
		if !ok {
			k = len(out)
			byRoot[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}

	return out
}

// setsOf maps the index partition of s through keys.
func setsOf[T any](s *Set, keys []T) [][]T {
	idx := s.Sets()
	out := make([][]T, len(idx))
	for i, set := range idx {
		out[i] = make([]T, len(set))
		for j, k := range set {
			out[i][j] = keys[k]
		}
	}

	return out
}

