// Package combinatorics sizes and enumerates candidate passphrase spaces.
//
// Contents
//
//   - Closed-form counting (CountPermutations, CountMultiCartesianProduct)
//     using math/big, since realistic word lists overflow 64 bits quickly.
//   - Lazy generators (Permutations, MultiCartesianProduct) returning
//     iter.Seq values that never hold more than one arrangement in memory.
//   - Strategy dispatch (Enumerate, Size) for a domain.SearchConfig.
//
// # Ordering
//
// Enumeration is deterministic for a fixed input. Permutations are emitted in
// lexicographic order of position indices; the cartesian product varies the
// last group fastest. Every yielded candidate is a fresh slice, so consumers
// may hand it to other goroutines.
package combinatorics
