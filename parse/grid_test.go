package parse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/parse"
)

var cell = parse.Chars(func(r rune) bool { return r != '\n' })

func TestGrid_Characters(t *testing.T) {
	for _, in := range []string{"#.#\n...\n", "#.#\n..."} {
		g, err := parse.GridOf(cell, "", "\n").Parse(in).Finish()
		require.NoError(t, err, "%q", in)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 3, g.Cols())
		assert.Equal(t, '#', g.At(grid.Pt(0, 2)))
		assert.Equal(t, "#.#\n...", g.String())
	}
}

func TestGrid_Separated(t *testing.T) {
	g, err := parse.GridOf(parse.SignedNumber(), " ", "\n").Parse("1 2 3\n4 -5 6\n").Finish()
	require.NoError(t, err)
	want := [][]int{{1, 2, 3}, {4, -5, 6}}
	var got [][]int
	for _, row := range g.AllRows() {
		got = append(got, append([]int(nil), row...))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_Ragged(t *testing.T) {
	st := parse.GridOf(cell, "", "\n").Parse("abc\nde\nfgh")
	require.False(t, st.Ok())
	assert.ErrorIs(t, st.Err, parse.ErrGeneric)
	assert.ErrorIs(t, st.Err, grid.ErrNonRectangular)
	assert.Equal(t, "de\nfgh", st.Rest)
	assert.Contains(t, st.Err.Error(), "row 1 has 2 cells, want 3")
}

func TestGrid_EmptyAndTrailing(t *testing.T) {
	_, err := parse.GridOf(cell, "", "\n").Parse("").Finish()
	requireParseError(t, err, parse.ErrGeneric, "")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = parse.GridOf(parse.Number(), ",", "\n").Parse("x").Finish()
	requireParseError(t, err, parse.ErrParseInt, "x")

	// Stops at the first non-row and leaves it for the caller.
	st := parse.GridOf(parse.Number(), ",", "\n").Parse("1,2\n3,4\n\nrest")
	require.True(t, st.Ok())
	assert.Equal(t, "\nrest", st.Rest)
	assert.Equal(t, 2, st.Value.Rows())
}
