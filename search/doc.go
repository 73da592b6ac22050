// Package search implements a generic shortest-path engine over any graph
// that can enumerate the neighbours of a key and price the edge between two
// keys.
//
// Overview:
//
//   - A single engine serves both Dijkstra and A*: a Graph that also
//     implements Heuristic has its frontier ordered by CostToWeight, every
//     other Graph is ordered by accumulated cost.
//   - Keys are settled the first time they are popped. Later pops at the same
//     cost add another predecessor to the PrecedentMap, so every shortest path
//     can be recovered or counted.
//   - A StopFunc runs after every pop and may end the search early, which
//     covers "first exit reached" as well as "no better route can appear".
//
// Ordering:
//
// The frontier is a min-heap ordered by weight, then by accumulated cost, then
// by push order. Equal-weight entries therefore pop deterministically, and a
// predecessor is always popped before the entries it produced. Path
// reconstruction follows the earliest-recorded predecessor.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with lazy decrease-key.
//   - Space: O(V + E) for the precedent map and the frontier.
//
// Edge costs must be non-negative. This is checked at runtime and reported as
// ErrNegativeCost unless WithCostCheck(false) is given.
//
// Example:
//
//	g := search.MapGraph[string, int]{}
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	dist, err := search.ShortestDistanceToAll[string, int](g, "A")
package search
