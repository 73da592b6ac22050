package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// serpentine builds an n×n maze whose every fourth row is a wall with a
// single gap, alternating sides, so the walk snakes across the grid.
func serpentine(n int) string {
	var sb strings.Builder
	for r := range n {
		for c := range n {
			switch {
			case r%4 != 3:
				sb.WriteByte('.')
			case (r/4%2 == 0 && c == n-1) || (r/4%2 == 1 && c == 0):
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// BenchmarkMaze_Solve measures A* across a 200×200 serpentine maze.
func BenchmarkMaze_Solve(b *testing.B) {
	const n = 200
	m, err := gridgraph.ParseMaze(serpentine(n))
	if err != nil {
		b.Fatalf("setup ParseMaze failed: %v", err)
	}
	from, to := grid.Pt(0, 0), grid.Pt(n-2, n-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, ok, err := m.Solve(from, to); err != nil || !ok {
			b.Fatalf("Solve: ok=%v err=%v", ok, err)
		}
	}
}

// BenchmarkMaze_Components measures region labelling on the same maze.
func BenchmarkMaze_Components(b *testing.B) {
	m, err := gridgraph.ParseMaze(serpentine(200))
	if err != nil {
		b.Fatalf("setup ParseMaze failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Components()
	}
}
