// Package bfs provides breadth-first search over any graph that can list the
// neighbours of a key, returning unweighted distances, parent links and
// visit order.
//
// What
//
//   - Explore keys in non-decreasing hop count from a start key.
//   - BFS returns a Result holding the visit Order, the Depth of every
//     reached key and its Parent in the BFS tree.
//   - Walk streams the same visits to a callback that can stop the search.
//   - Filter prunes individual edges of a graph without copying it.
//   - WithMaxDepth bounds the search; WithContext makes it cancellable.
//
// Any search.Graph, and therefore every gridgraph.Maze, satisfies Graph.
//
// Determinism
//
//	Neighbours are enqueued in the order Adjacent yields them, so the visit
//	sequence is reproducible whenever Adjacent is.
//
// Complexity (V = reached keys, E = edges leaving them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(64))
//	if err != nil {
//		// ErrGraphNil, ErrOptionViolation or a wrapped context error
//	}
//	path, err := res.PathTo(goal) // ErrUnreachable if goal was not reached
package bfs
