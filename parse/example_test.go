package parse_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/parse"
)

// ExamplePair parses one "x,y" coordinate per line.
func ExamplePair() {
	pt := parse.Pair(parse.SignedNumber(), ",", parse.SignedNumber())
	pts, err := parse.ManyLines(pt, "\n").Parse("1,2\n-3,4\n").Finish()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(pts)
	// Output:
	// [{1 2} {-3 4}]
}

// ExampleGridOf reads a character maze into a grid.
func ExampleGridOf() {
	cell := parse.Chars(func(r rune) bool { return r != '\n' })
	g, err := parse.GridOf(cell, "", "\n").Parse("#S#\n#.E\n").Finish()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Rows(), g.Cols())
	fmt.Println(g)
	// Output:
	// 2 3
	// #S#
	// #.E
}

// ExampleError_Caret points at the character that stopped the parse.
func ExampleError_Caret() {
	input := "10,20,3x"
	_, err := parse.List(parse.Number(), ",").Parse(input).Finish()
	if pe, ok := err.(*parse.Error); ok {
		fmt.Println(pe.Caret(input))
	}
	// Output:
	// 10,20,3x
	//        ^
}
