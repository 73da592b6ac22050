package md5_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/md5"
)

func ExampleHashString() {
	fmt.Println(md5.HashString("The quick brown fox jumps over the lazy dog"))
	// Output: 9e107d9d372bb6826bd81d3542a419d6
}
