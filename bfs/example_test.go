package bfs_test

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/puzzlekit/bfs"
)

// numbers links n to n+1 and 2n, up to a ceiling.
type numbers int

func (c numbers) Adjacent(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, m := range []int{n + 1, 2 * n} {
			if m <= int(c) && !yield(m) {
				return
			}
		}
	}
}

// ExampleBFS finds the fewest "+1" and "×2" steps from 1 to 37.
func ExampleBFS() {
	res, err := bfs.BFS[int](numbers(100), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(37)
	fmt.Println(res.Depth[37], path)
	// Output: 7 [1 2 4 8 9 18 36 37]
}
