// Package disjointset implements union-find with path halving and union
// by rank.
//
// Set works over dense indices 0..n-1. Hashed and Ordered wrap a Set with
// a key-to-index table for arbitrary comparable or ordered keys; Ordered
// additionally reports its sets in ascending key order.
//
// Operations on unknown elements return ErrUnknownElement rather than
// growing the structure implicitly.
//
// Complexity: Find, Union and Connected run in amortised O(α(n)).
// Sets is O(n).
package disjointset
