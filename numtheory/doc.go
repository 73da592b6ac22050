// Package numtheory collects the integer helpers that keep showing up in
// cyclic-simulation puzzles: greatest common divisors, least common
// multiples, Bezout coefficients and the Chinese Remainder Theorem.
//
// All functions are generic over golang.org/x/exp/constraints integer
// types. Functions that can produce negative intermediate values
// (Bezout, ChineseRemainder*) require a signed type.
//
// Absence is not an error here: a system of congruences with no solution
// yields ok == false, exactly like a map lookup.
//
// Example:
//
//	n, ok := numtheory.ChineseRemainder(0, 3, 3, 4)
//	// n == -9, ok == true; any n+12k also satisfies both congruences.
package numtheory
