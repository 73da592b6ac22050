package numtheory

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. The result is never negative; GCD(0, 0) == 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}

// LCMAll folds LCM over values. An empty input yields 1.
func LCMAll[T constraints.Integer](values ...T) T {
	var acc T = 1
	for _, v := range values {
		acc = LCM(acc, v)
	}

	return acc
}

// Bezout runs the iterative extended Euclidean algorithm and returns
// g, s, t such that g == s*a + t*b and |g| == GCD(a, b).
func Bezout[T constraints.Signed](a, b T) (g, s, t T) {
	oldR, r := a, b
	oldS, s := T(1), T(0)
	oldT, t := T(0), T(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	return oldR, oldS, oldT
}
