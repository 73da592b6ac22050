// Package gridgraph treats a rectangular grid of open and wall cells as a
// graph for the search package, and answers the usual maze questions on top
// of it.
//
// What:
//
//   - Maze is a position graph over *grid.Grid[Cell] with Conn4 or Conn8
//     moves and a uniform step cost; WithGoal adds a Manhattan (Conn4) or
//     Chebyshev (Conn8) estimate so searches run A*-style.
//   - TurningMaze adds a heading to every state: a step moves forward only,
//     a quarter turn in place has its own cost.
//   - Components groups open cells into connected regions with a disjoint set.
//   - WallsToBreak finds the fewest walls to remove to join two cells.
//
// Complexity:
//
//   - Solve, Distances, CountShortestPaths: O(W×H×d log(W×H)).
//   - Components: O(W×H×d×α(W×H)), Memory: O(W×H).
//   - WallsToBreak: O(W×H×d log(W×H)).
//
// Options:
//
//   - WithConn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - WithWall: rune read as a wall by ParseMaze (default '#').
//   - WithStepCost: cost of one move (default 1).
//   - WithGoal: target for the distance estimate.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCost: negative step or turn cost.
//   - ErrOutOfMaze: a start or target is not an open cell.
package gridgraph
