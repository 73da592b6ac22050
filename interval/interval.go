package interval

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bound is one end of an interval.
type Bound[T constraints.Ordered] struct {
	Value     T
	Inclusive bool
}

// Interval is the set of values between Begin and End.
type Interval[T constraints.Ordered] struct {
	Begin Bound[T]
	End   Bound[T]
}

// New returns the interval between begin and end.
func New[T constraints.Ordered](begin, end Bound[T]) Interval[T] {
	return Interval[T]{Begin: begin, End: end}
}

// Closed returns [a, b].
func Closed[T constraints.Ordered](a, b T) Interval[T] {
	return New(Bound[T]{a, true}, Bound[T]{b, true})
}

// Open returns (a, b).
func Open[T constraints.Ordered](a, b T) Interval[T] {
	return New(Bound[T]{a, false}, Bound[T]{b, false})
}

// ClosedOpen returns [a, b).
func ClosedOpen[T constraints.Ordered](a, b T) Interval[T] {
	return New(Bound[T]{a, true}, Bound[T]{b, false})
}

// OpenClosed returns (a, b].
func OpenClosed[T constraints.Ordered](a, b T) Interval[T] {
	return New(Bound[T]{a, false}, Bound[T]{b, true})
}

// Contains reports whether v lies inside iv.
func (iv Interval[T]) Contains(v T) bool {
	return iv.Begin.below(v) && iv.End.above(v)
}

// below reports whether b, as a lower bound, admits v.
func (b Bound[T]) below(v T) bool {
	if b.Inclusive {
		return b.Value <= v
	}

	return b.Value < v
}

// above reports whether b, as an upper bound, admits v.
func (b Bound[T]) above(v T) bool {
	if b.Inclusive {
		return b.Value >= v
	}

	return b.Value > v
}

// IsEmpty reports whether iv contains no value.
func (iv Interval[T]) IsEmpty() bool {
	switch cmp.Compare(iv.Begin.Value, iv.End.Value) {
	case -1:
		return false
	case 0:
		return !iv.Begin.Inclusive || !iv.End.Inclusive
	}

	return true
}

// compareLower orders lower bounds from widest to tightest.
func compareLower[T constraints.Ordered](a, b Bound[T]) int {
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	switch {
	case a.Inclusive == b.Inclusive:
		return 0
	case a.Inclusive:
		return -1
	}

	return 1
}

// compareUpper orders upper bounds from tightest to widest.
func compareUpper[T constraints.Ordered](a, b Bound[T]) int {
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	switch {
	case a.Inclusive == b.Inclusive:
		return 0
	case a.Inclusive:
		return 1
	}

	return -1
}

// Intersection returns the values shared by iv and o. ok is false when they
// share none.
func (iv Interval[T]) Intersection(o Interval[T]) (Interval[T], bool) {
	out := iv
	if compareLower(o.Begin, out.Begin) > 0 {
		out.Begin = o.Begin
	}
	if compareUpper(o.End, out.End) < 0 {
		out.End = o.End
	}
	if out.IsEmpty() {
		return Interval[T]{}, false
	}

	return out, true
}

// Intersects reports whether iv and o share a value.
func (iv Interval[T]) Intersects(o Interval[T]) bool {
	_, ok := iv.Intersection(o)

	return ok
}

// before reports whether every value of iv is below every value of o with
// a gap or a shared excluded endpoint between them.
func (iv Interval[T]) before(o Interval[T]) bool {
	switch cmp.Compare(iv.End.Value, o.Begin.Value) {
	case -1:
		return true
	case 0:
		return !iv.End.Inclusive && !o.Begin.Inclusive
	}

	return false
}

// connected reports whether iv ∪ o is a single interval.
func (iv Interval[T]) connected(o Interval[T]) bool {
	return !iv.before(o) && !o.before(iv)
}

// String renders iv in the usual bracket notation, e.g. "[1, 3)".
func (iv Interval[T]) String() string {
	lo, hi := "(", ")"
	if iv.Begin.Inclusive {
		lo = "["
	}
	if iv.End.Inclusive {
		hi = "]"
	}

	return fmt.Sprintf("%s%v, %v%s", lo, iv.Begin.Value, iv.End.Value, hi)
}
