// Package itertools adds small extensions over iter.Seq and slices that the
// standard library leaves out.
//
// What:
//
//   - ValueCounts, Contains: single-pass reductions over a sequence.
//   - CycleLength, DistanceToCycle, FindCycle: detect the first repeated
//     value of a sequence, for "what is the state after a billion steps"
//     style simulations.
//   - Pairs, PairsWithRepeats: unordered pairs of a slice in index order.
//
// Complexity:
//
//   - ValueCounts, Contains: O(n) time.
//   - Cycle detection: O(μ+λ) time and memory, where μ is the distance to
//     the cycle and λ its length.
//   - Pairs: O(n²) pairs, generated lazily.
//
// Every function stops pulling from its input as soon as the answer is
// known, so infinite sequences are fine as long as they eventually repeat.
package itertools
