// Package puzzlekit is a toolbox for grid-and-graph puzzles: the parsing,
// geometry and search plumbing that every day of a puzzle calendar needs
// before the interesting part starts.
//
// What lives where:
//
//	parse/         parser combinators over strings (numbers, lists, grids)
//	grid/          Point, Delta, Direction, dense Grid and sparse Lattice
//	search/        Dijkstra / A* with a precedent map, path counting and
//	               early-termination predicates over any Graph
//	gridgraph/     mazes on top of grid + search: solving, counting,
//	               wall breaching, turn-cost walks, components
//	bfs/           unweighted breadth-first search over the same Graph shape
//	disjointset/   union-find over indices, hashed or ordered keys
//	spanning/      minimum spanning trees (Kruskal, Prim) and merge sweeps
//	interval/      intervals with open/closed bounds and their unions
//	numtheory/     GCD, LCM, Bezout, Chinese Remainder Theorem
//	md5/           a streaming MD5 for hash-mining puzzles
//	itertools/     value counts, cycle detection, pairs
//	sequence/      finite-difference extrapolation
//
// Quick taste:
//
//	m, _ := gridgraph.ParseMaze(input)
//	s, _ := m.Marker('S')
//	e, _ := m.Marker('E')
//	cost, path, ok, err := m.Solve(s, e)
//
// Every package is generic over its key and cost types, returns sentinel
// errors wrapped with context, and has runnable examples in example_test.go.
package puzzlekit
