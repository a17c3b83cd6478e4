package combinatorics

import (
	"iter"

	"combinator/internal/domain"
)

// MultiCartesianProduct yields every candidate made of exactly one word from
// each group, in group order. Nothing is yielded if there are no groups or any
// group is empty.
func MultiCartesianProduct(groups [][]string) iter.Seq[domain.Candidate] {
	return func(yield func(domain.Candidate) bool) {
		if len(groups) == 0 {
			return
		}
		for _, g := range groups {
			if len(g) == 0 {
				return
			}
		}

		// Odometer over group indices; the last group turns fastest.
		pos := make([]int, len(groups))
		for {
			c := make(domain.Candidate, len(groups))
			for i, p := range pos {
				c[i] = groups[i][p]
			}
			if !yield(c) {
				return
			}

			i := len(pos) - 1
			for ; i >= 0; i-- {
				pos[i]++
				if pos[i] < len(groups[i]) {
					break
				}
				pos[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
