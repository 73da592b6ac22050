package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the maze has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCost indicates a negative step or turn cost.
	ErrBadCost = errors.New("gridgraph: costs must be non-negative")
	// ErrOutOfMaze indicates a start or target outside the maze or on a wall.
	ErrOutOfMaze = errors.New("gridgraph: point is outside the maze or on a wall")
)
