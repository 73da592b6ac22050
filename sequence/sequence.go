package sequence

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any type the differences can be taken over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Difference returns v[i]-v[i-1] for every i >= 1. It is empty when v has
// fewer than two elements.
func Difference[T Number](v []T) []T {
	if len(v) < 2 {
		return []T{}
	}
	out := make([]T, len(v)-1)
	for i := 1; i < len(v); i++ {
		out[i-1] = v[i] - v[i-1]
	}

	return out
}

// DifferenceSequence holds the current value followed by the current value
// of every non-zero difference level.
type DifferenceSequence[T Number] struct {
	state []T
}

// Derive builds a DifferenceSequence positioned at values[0].
func Derive[T Number](values []T) *DifferenceSequence[T] {
	var state []T
	current := values
	for slices.ContainsFunc(current, func(v T) bool { return v != 0 }) {
		state = append(state, current[0])
		current = Difference(current)
	}

	return &DifferenceSequence[T]{state: state}
}

// Order returns the number of difference levels kept, which is one more
// than the degree of the polynomial. An all-zero input has order 0.
func (d *DifferenceSequence[T]) Order() int { return len(d.state) }

// Current returns the value at the current position.
func (d *DifferenceSequence[T]) Current() T {
	if len(d.state) == 0 {
		var zero T
		return zero
	}

	return d.state[0]
}

// Next returns the current value and advances one position.
func (d *DifferenceSequence[T]) Next() T {
	v := d.Current()
	for i := 1; i < len(d.state); i++ {
		d.state[i-1] += d.state[i]
	}

	return v
}

// StepBack moves one position back and returns the value there.
func (d *DifferenceSequence[T]) StepBack() T {
	for i := len(d.state) - 1; i > 0; i-- {
		d.state[i-1] -= d.state[i]
	}

	return d.Current()
}

// All yields the values from the current position onward, advancing d as it
// goes. The sequence is infinite.
func (d *DifferenceSequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(d.Next()) {
		}
	}
}

// Clone returns an independent copy positioned at the same value.
func (d *DifferenceSequence[T]) Clone() *DifferenceSequence[T] {
	return &DifferenceSequence[T]{state: slices.Clone(d.state)}
}

// Extrapolate returns the value at index n of the polynomial sequence that
// starts with values. n may lie before 0 or past the end of values.
func Extrapolate[T Number](values []T, n int) T {
	d := Derive(values)
	for ; n > 0; n-- {
		d.Next()
	}
	for ; n < 0; n++ {
		d.StepBack()
	}

	return d.Current()
}
