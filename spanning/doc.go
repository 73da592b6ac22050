// Package spanning builds minimum spanning trees and forests.
//
// What
//
//   - Kruskal: sort all edges by weight and join components with a
//     disjointset.Hashed; fails with ErrDisconnected unless every vertex ends
//     up in one tree.
//   - Merges: the same sweep as an iterator, yielding each accepted edge with
//     the number of components left. Stop early for "join until N groups
//     remain" questions.
//   - Prim: grow a tree from a root over any search.Graph using a min-heap.
//     Only the root's component is spanned.
//
// Edges are undirected for Kruskal and Merges. Prim follows Adjacent, so a
// directed graph gives a tree of the reachable part only.
//
// Determinism
//
//	Equal weights are taken in input order (Kruskal) or discovery order
//	(Prim).
//
// Complexity
//
//   - Kruskal, Merges: O(E log E + E·α(V)) time, O(V + E) memory.
//   - Prim: O(E log E) time, O(V + E) memory.
package spanning
