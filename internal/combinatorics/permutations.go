package combinatorics

import (
	"iter"

	"combinator/internal/domain"
)

// Permutations yields every ordered selection of k distinct positions from
// words. Positions, not values, are distinct: equal words at different
// positions produce separate candidates.
func Permutations(words []string, k int) iter.Seq[domain.Candidate] {
	return func(yield func(domain.Candidate) bool) {
		n := len(words)
		if k < 0 || k > n {
			return
		}

		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		// cycles[i] counts the remaining choices for slot i before it rotates.
		cycles := make([]int, k)
		for i := range cycles {
			cycles[i] = n - i
		}

		emit := func() bool {
			c := make(domain.Candidate, k)
			for i, idx := range indices[:k] {
				c[i] = words[idx]
			}
			return yield(c)
		}

		if !emit() {
			return
		}
		for {
			i := k - 1
			for ; i >= 0; i-- {
				cycles[i]--
				if cycles[i] == 0 {
					// Move indices[i] to the end and reset the slot.
					first := indices[i]
					copy(indices[i:], indices[i+1:])
					indices[n-1] = first
					cycles[i] = n - i
					continue
				}
				j := n - cycles[i]
				indices[i], indices[j] = indices[j], indices[i]
				if !emit() {
					return
				}
				break
			}
			if i < 0 {
				return
			}
		}
	}
}
