package itertools_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/itertools"
)

// ExampleFindCycle skips ahead a billion steps of a simulation that repeats.
func ExampleFindCycle() {
	step := func(x int) int { return (x*x + 1) % 97 }
	states := func(yield func(int) bool) {
		for x := 2; yield(x); x = step(x) {
		}
	}

	start, length, _ := itertools.FindCycle[int](states)

	target := 1_000_000_000
	idx := start + (target-start)%length
	x := 2
	for range idx {
		x = step(x)
	}
	fmt.Println(start, length, x)
	// Output: 1 3 5
}

// ExamplePairs lists every unordered pair once.
func ExamplePairs() {
	for a, b := range itertools.Pairs([]string{"x", "y", "z"}) {
		fmt.Print(a, b, " ")
	}
	fmt.Println()
	// Output: xy xz yz
}
