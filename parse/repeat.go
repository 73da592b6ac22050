package parse

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/puzzlekit/grid"
)

// Many applies p zero or more times and collects the results in order.
// It never fails. An iteration that succeeds without consuming input ends
// the repetition, so Many terminates for every p.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) State[[]T] {
		var out []T
		rest := input
		for {
			st := p(rest)
			if !st.Ok() || len(st.Rest) == len(rest) {
				break
			}
			out = append(out, st.Value)
			rest = st.Rest
		}

		return success(out, rest)
	}
}

// Many1 is Many that requires at least one match, failing with p's
// error otherwise.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(input string) State[[]T] {
		first := p(input)
		if !first.Ok() {
			return failure[[]T](first.Err)
		}
		more := Many(p)(first.Rest)

		return success(append([]T{first.Value}, more.Value...), more.Rest)
	}
}

// Repeat applies p exactly n times, failing with the first failing
// repetition's error.
func Repeat[T any](p Parser[T], n int) Parser[[]T] {
	return func(input string) State[[]T] {
		out := make([]T, 0, max(n, 0))
		rest := input
		for range n {
			st := p(rest)
			if !st.Ok() {
				return failure[[]T](st.Err)
			}
			out = append(out, st.Value)
			rest = st.Rest
		}

		return success(out, rest)
	}
}

// List applies p one or more times separated by the literal sep. It is
// greedy and stops, without consuming the separator, when either the
// separator or the following p fails to match.
func List[T any](p Parser[T], sep string) Parser[[]T] {
	tail := Many(Ignore(Tag(sep), p))

	return Map(AndThen(p, tail), func(t Tuple[T, []T]) []T {
		return append([]T{t.First}, t.Second...)
	})
}

// Line applies p and then requires the literal terminator.
func Line[T any](p Parser[T], terminator string) Parser[T] {
	return Skip(p, Tag(terminator))
}

// ManyLines applies Line(p, terminator) until it no longer matches.
func ManyLines[T any](p Parser[T], terminator string) Parser[[]T] {
	return Many(Line(p, terminator))
}

// GridOf parses a rectangular block of p-tokens into a grid. Cells within a
// row are separated by sep, which may be empty for character grids, and
// rows by terminator; a trailing terminator is consumed. p must not match
// the terminator. A row whose length differs from the first row's fails
// with ErrGeneric positioned at that row.
func GridOf[T any](p Parser[T], sep, terminator string) Parser[*grid.Grid[T]] {
	row := List(p, sep)
	if sep == "" {
		row = Many1(p)
	}

	return func(input string) State[*grid.Grid[T]] {
		var (
			cells []T
			rows  int
			cols  int
			rest  = input
		)
		for rest != "" {
			st := row(rest)
			if !st.Ok() || len(st.Rest) == len(rest) {
				if rows == 0 {
					return failure[*grid.Grid[T]](errOrEmpty(st.Err, rest))
				}
				break
			}
			if rows == 0 {
				cols = len(st.Value)
			} else if len(st.Value) != cols {
				msg := fmt.Sprintf("row %d has %d cells, want %d", rows, len(st.Value), cols)
				return failure[*grid.Grid[T]](&Error{Kind: ErrGeneric, Text: msg, Rest: rest, Cause: grid.ErrNonRectangular})
			}
			cells = append(cells, st.Value...)
			rows++

			next, ok := strings.CutPrefix(st.Rest, terminator)
			rest = st.Rest
			if !ok {
				break
			}
			rest = next
		}
		if rows == 0 {
			return failure[*grid.Grid[T]](errOrEmpty(nil, rest))
		}
		g, err := grid.FromSlice(cells, rows, cols)
		if err != nil {
			return failure[*grid.Grid[T]](&Error{Kind: ErrGeneric, Text: err.Error(), Rest: input, Cause: err})
		}

		return success(g, rest)
	}
}

func errOrEmpty(err *Error, rest string) *Error {
	if err != nil {
		return err
	}

	return &Error{Kind: ErrGeneric, Text: "empty grid", Rest: rest, Cause: grid.ErrEmptyGrid}
}
