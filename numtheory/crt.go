package numtheory

import "golang.org/x/exp/constraints"

// Congruence is the statement n ≡ Remainder (mod Modulus).
type Congruence[T constraints.Signed] struct {
	Remainder T
	Modulus   T
}

// ChineseRemainderWithModulus combines two congruences into one.
//
// It returns n and m such that every n+k*m satisfies both
// n ≡ ra (mod ma) and n ≡ rb (mod mb). The moduli need not be coprime:
// when g = gcd(ma, mb) > 1 a solution exists only if ra ≡ rb (mod g), and
// the combined modulus is lcm(ma, mb). ok is false when the system is
// inconsistent or a modulus is zero.
//
// The returned representative is not normalized into [0, m); it keeps the
// sign produced by the Bezout combination, e.g. (0 mod 3, 3 mod 4) gives
// n == -9, m == 12.
func ChineseRemainderWithModulus[T constraints.Signed](ra, ma, rb, mb T) (n, m T, ok bool) {
	if ma == 0 || mb == 0 {
		return 0, 0, false
	}
	g, sa, sb := Bezout(ma, mb)
	if g < 0 {
		g, sa, sb = -g, -sa, -sb
	}
	combined := ra*mb*sb + rb*ma*sa
	if g == 1 {
		m = ma * mb
		return combined % m, m, true
	}
	if ra%g != rb%g {
		return 0, 0, false
	}
	m = ma / g * mb

	return combined / g % m, m, true
}

// ChineseRemainder is ChineseRemainderWithModulus without the modulus.
func ChineseRemainder[T constraints.Signed](ra, ma, rb, mb T) (T, bool) {
	n, _, ok := ChineseRemainderWithModulus(ra, ma, rb, mb)

	return n, ok
}

// ChineseRemainderManyWithModulus folds every congruence into one,
// starting from the trivial 0 (mod 1). An empty input yields (0, 1, true).
func ChineseRemainderManyWithModulus[T constraints.Signed](cs []Congruence[T]) (n, m T, ok bool) {
	n, m = 0, 1
	for _, c := range cs {
		n, m, ok = ChineseRemainderWithModulus(n, m, c.Remainder, c.Modulus)
		if !ok {
			return 0, 0, false
		}
	}

	return n, m, true
}

// ChineseRemainderMany is ChineseRemainderManyWithModulus without the modulus.
func ChineseRemainderMany[T constraints.Signed](cs []Congruence[T]) (T, bool) {
	n, _, ok := ChineseRemainderManyWithModulus(cs)

	return n, ok
}
