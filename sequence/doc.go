// Package sequence extrapolates polynomial sequences with finite differences.
//
// Derive reduces a run of values to the leading element of each difference
// level, stopping once a level is entirely zero. The resulting
// DifferenceSequence walks the underlying polynomial one step at a time in
// either direction using additions only, so integer inputs stay exact.
//
// Example:
//
//	next := sequence.Extrapolate([]int{1, 3, 6, 10, 15, 21}, 6) // 28
//	prev := sequence.Extrapolate([]int{1, 3, 6, 10, 15, 21}, -1) // 0
package sequence
