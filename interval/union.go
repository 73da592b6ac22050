package interval

import (
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Union is a set of values stored as sorted, pairwise disjoint, non-touching
// intervals. The zero value is an empty set.
type Union[T constraints.Ordered] struct {
	ivs []Interval[T]
}

// NewUnion returns the union of ivs.
func NewUnion[T constraints.Ordered](ivs ...Interval[T]) *Union[T] {
	u := &Union[T]{}
	u.ivs = normalize(append([]Interval[T](nil), ivs...))

	return u
}

// normalize drops empty intervals, sorts by lower bound and merges every
// connected run.
func normalize[T constraints.Ordered](ivs []Interval[T]) []Interval[T] {
	ivs = slices.DeleteFunc(ivs, Interval[T].IsEmpty)
	if len(ivs) < 2 {
		return ivs
	}
	slices.SortFunc(ivs, func(a, b Interval[T]) int {
		return compareLower(a.Begin, b.Begin)
	})

	out := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if !last.connected(iv) {
			out = append(out, iv)
			continue
		}
		if compareUpper(iv.End, last.End) > 0 {
			last.End = iv.End
		}
	}

	return out
}

// Add inserts every value of iv.
func (u *Union[T]) Add(iv Interval[T]) {
	u.ivs = normalize(append(u.ivs, iv))
}

// Remove deletes every value of iv.
func (u *Union[T]) Remove(iv Interval[T]) {
	if iv.IsEmpty() {
		return
	}
	out := make([]Interval[T], 0, len(u.ivs)+1)
	for _, cur := range u.ivs {
		if !cur.Intersects(iv) {
			out = append(out, cur)
			continue
		}
		left := Interval[T]{Begin: cur.Begin, End: Bound[T]{iv.Begin.Value, !iv.Begin.Inclusive}}
		if !left.IsEmpty() {
			out = append(out, left)
		}
		right := Interval[T]{Begin: Bound[T]{iv.End.Value, !iv.End.Inclusive}, End: cur.End}
		if !right.IsEmpty() {
			out = append(out, right)
		}
	}
	u.ivs = out
}

// Merge returns the union of u and o.
func (u *Union[T]) Merge(o *Union[T]) *Union[T] {
	all := make([]Interval[T], 0, len(u.ivs)+len(o.ivs))
	all = append(all, u.ivs...)
	all = append(all, o.ivs...)

	return &Union[T]{ivs: normalize(all)}
}

// Intersect returns the values present in both u and o.
func (u *Union[T]) Intersect(o *Union[T]) *Union[T] {
	var out []Interval[T]
	for _, a := range u.ivs {
		for _, b := range o.ivs {
			if iv, ok := a.Intersection(b); ok {
				out = append(out, iv)
			}
		}
	}

	return &Union[T]{ivs: normalize(out)}
}

// Difference returns the values of u that are not in o.
func (u *Union[T]) Difference(o *Union[T]) *Union[T] {
	out := u.Clone()
	for _, iv := range o.ivs {
		out.Remove(iv)
	}

	return out
}

// Clone returns an independent copy of u.
func (u *Union[T]) Clone() *Union[T] {
	return &Union[T]{ivs: slices.Clone(u.ivs)}
}

// Contains reports whether v is in the set.
func (u *Union[T]) Contains(v T) bool {
	i, _ := slices.BinarySearchFunc(u.ivs, v, func(iv Interval[T], v T) int {
		if iv.End.above(v) {
			return 1
		}
		return -1
	})

	return i < len(u.ivs) && u.ivs[i].Contains(v)
}

// Intervals returns a copy of the stored intervals in ascending order.
func (u *Union[T]) Intervals() []Interval[T] { return slices.Clone(u.ivs) }

// Len returns the number of stored intervals.
func (u *Union[T]) Len() int { return len(u.ivs) }

// IsEmpty reports whether the set has no values.
func (u *Union[T]) IsEmpty() bool { return len(u.ivs) == 0 }

// String renders the set as "{[1, 3), (5, 7]}".
func (u *Union[T]) String() string {
	parts := make([]string, len(u.ivs))
	for i, iv := range u.ivs {
		parts[i] = iv.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
