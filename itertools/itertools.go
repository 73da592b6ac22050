package itertools

import "iter"

// ValueCounts returns how often each value occurs in seq.
func ValueCounts[T comparable](seq iter.Seq[T]) map[T]int {
	counts := make(map[T]int)
	for v := range seq {
		counts[v]++
	}

	return counts
}

// Contains reports whether seq yields v.
func Contains[T comparable](seq iter.Seq[T], v T) bool {
	for x := range seq {
		if x == v {
			return true
		}
	}

	return false
}

// FindCycle pulls from seq until a value repeats. start is the index of the
// first occurrence of that value and length the distance between its two
// occurrences. ok is false when seq ends without repeating.
func FindCycle[T comparable](seq iter.Seq[T]) (start, length int, ok bool) {
	seen := make(map[T]int)
	i := 0
	for v := range seq {
		if first, dup := seen[v]; dup {
			return first, i - first, true
		}
		seen[v] = i
		i++
	}

	return 0, 0, false
}

// CycleLength returns the length of the cycle seq falls into.
func CycleLength[T comparable](seq iter.Seq[T]) (int, bool) {
	_, length, ok := FindCycle(seq)

	return length, ok
}

// DistanceToCycle returns how many values seq yields before entering its
// cycle.
func DistanceToCycle[T comparable](seq iter.Seq[T]) (int, bool) {
	start, _, ok := FindCycle(seq)

	return start, ok
}

// Pairs yields every unordered pair (s[i], s[j]) with i < j, in index order.
func Pairs[T any](s []T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for i := range s {
			for j := i + 1; j < len(s); j++ {
				if !yield(s[i], s[j]) {
					return
				}
			}
		}
	}
}

// PairsWithRepeats is Pairs with the diagonal (s[i], s[i]) included.
func PairsWithRepeats[T any](s []T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for i := range s {
			for j := i; j < len(s); j++ {
				if !yield(s[i], s[j]) {
					return
				}
			}
		}
	}
}
