package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// loop offers two five-step routes from S (facing East) to E: along the
// bottom with one turn, or along the top with two.
const loop = `######
#...E#
#.##.#
#S...#
######`

func turning(t *testing.T, turnCost int) (*gridgraph.TurningMaze, gridgraph.State, grid.Point[int]) {
	t.Helper()
	m := mustParse(t, loop)
	s, e := ends(t, m)
	tm, err := gridgraph.NewTurningMaze(m, turnCost)
	require.NoError(t, err)

	return tm, gridgraph.State{Pos: s, Facing: grid.East}, e
}

func TestTurningMaze_Solve(t *testing.T) {
	tm, from, to := turning(t, 1000)

	cost, path, ok, err := tm.Solve(from, to)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1005, cost)

	want := []gridgraph.State{
		{Pos: grid.Pt(3, 1), Facing: grid.East},
		{Pos: grid.Pt(3, 2), Facing: grid.East},
		{Pos: grid.Pt(3, 3), Facing: grid.East},
		{Pos: grid.Pt(3, 4), Facing: grid.East},
		{Pos: grid.Pt(3, 4), Facing: grid.North},
		{Pos: grid.Pt(2, 4), Facing: grid.North},
		{Pos: grid.Pt(1, 4), Facing: grid.North},
	}
	assert.Equal(t, want, path)
}

func TestTurningMaze_BestPathTiles(t *testing.T) {
	tm, from, to := turning(t, 1000)
	tiles, best, ok, err := tm.BestPathTiles(from, to)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1005, best)
	assert.Equal(t, []grid.Point[int]{
		grid.Pt(1, 4), grid.Pt(2, 4),
		grid.Pt(3, 1), grid.Pt(3, 2), grid.Pt(3, 3), grid.Pt(3, 4),
	}, tiles)

	// Free turns make both routes equally cheap.
	tm, from, to = turning(t, 0)
	tiles, best, ok, err = tm.BestPathTiles(from, to)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, best)
	assert.Len(t, tiles, 10)
}

func TestTurningMaze_AdjacentAndCost(t *testing.T) {
	tm, from, _ := turning(t, 7)

	var got []gridgraph.State
	for s := range tm.Adjacent(from) {
		got = append(got, s)
	}
	assert.Equal(t, []gridgraph.State{
		{Pos: grid.Pt(3, 2), Facing: grid.East},
		{Pos: grid.Pt(3, 1), Facing: grid.North},
		{Pos: grid.Pt(3, 1), Facing: grid.South},
	}, got)

	c, ok := tm.Cost(from, gridgraph.State{Pos: from.Pos, Facing: grid.North})
	assert.True(t, ok)
	assert.Equal(t, 7, c)

	_, ok = tm.Cost(from, gridgraph.State{Pos: from.Pos, Facing: grid.West})
	assert.False(t, ok, "half turns take two moves")

	_, ok = tm.Cost(from, gridgraph.State{Pos: grid.Pt(2, 1), Facing: grid.East})
	assert.False(t, ok, "only forward steps")

	assert.Equal(t, "(3, 1) East", from.String())
}

func TestNewTurningMaze_Errors(t *testing.T) {
	_, err := gridgraph.NewTurningMaze(nil, 1)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewTurningMaze(mustParse(t, "."), -1)
	assert.ErrorIs(t, err, gridgraph.ErrBadCost)
}
