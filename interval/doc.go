// Package interval provides bounded intervals over ordered types and a
// normalized union of disjoint intervals.
//
// Each end of an Interval is a Bound that is either inclusive or exclusive.
// A Union keeps its intervals sorted, pairwise disjoint and non-touching:
// [1, 3) and [3, 5] are stored as [1, 5], while [1, 3) and (3, 5] stay apart.
// No discreteness is assumed, so [1, 2] and [3, 4] over integers remain two
// intervals.
package interval
