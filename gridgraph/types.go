package gridgraph

import "github.com/katalvlaran/puzzlekit/grid"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor steps for c, clockwise from north.
func (c Connectivity) offsets() []grid.Delta {
	if c == Conn8 {
		return grid.Adjacent
	}

	return grid.PlusAdjacent
}

// Cell is the content of one maze square.
type Cell uint8

const (
	// Open can be walked through.
	Open Cell = iota
	// Wall blocks movement.
	Wall
)

// String renders Open as "." and Wall as "#".
func (c Cell) String() string {
	if c == Wall {
		return "#"
	}

	return "."
}

// Options contains tunable parameters for a Maze.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Wall is the rune ParseMaze reads as a wall.
	Wall rune
	// StepCost is the cost of moving to a neighbouring cell.
	StepCost int
	// Goal, when set, turns on a distance-to-goal heuristic.
	Goal    grid.Point[int]
	HasGoal bool
}

// Option represents a functional option for configuring a Maze.
type Option func(*Options)

// DefaultOptions returns Conn4, '#' walls, unit steps and no goal.
func DefaultOptions() Options {
	return Options{
		Conn:     Conn4,
		Wall:     '#',
		StepCost: 1,
	}
}

// WithConn sets the connectivity.
func WithConn(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithWall sets the rune read as a wall by ParseMaze.
func WithWall(r rune) Option {
	return func(o *Options) {
		o.Wall = r
	}
}

// WithStepCost sets the cost of one move. Panics on a negative cost.
func WithStepCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadCost.Error())
		}
		o.StepCost = c
	}
}

// WithGoal makes searches estimate the remaining cost to goal: Manhattan
// distance under Conn4, Chebyshev distance under Conn8, times StepCost.
func WithGoal(goal grid.Point[int]) Option {
	return func(o *Options) {
		o.Goal = goal
		o.HasGoal = true
	}
}
