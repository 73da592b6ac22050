package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/disjointset"
)

// ExampleOrdered groups wire endpoints into circuits.
func ExampleOrdered() {
	circuits := disjointset.NewOrdered("a", "b", "c", "d", "e")
	for _, w := range [][2]string{{"a", "d"}, {"c", "e"}, {"d", "b"}} {
		if _, err := circuits.Union(w[0], w[1]); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(circuits.Sets())
	// Output:
	// [[a b d] [c e]]
}
