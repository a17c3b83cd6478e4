package combinatorics

import "math/big"

// CountPermutations returns n!/(n-k)!, the number of ordered selections of k
// distinct positions out of n. It returns 0 when k > n or either argument is
// negative.
func CountPermutations(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	// MulRange(a, b) is 1 for a > b, which covers k == 0.
	return new(big.Int).MulRange(int64(n-k+1), int64(n))
}

// CountMultiCartesianProduct returns the product of the group sizes. It returns
// 0 if any group is empty or there are no groups at all.
func CountMultiCartesianProduct(groups [][]string) *big.Int {
	if len(groups) == 0 {
		return new(big.Int)
	}
	total := big.NewInt(1)
	size := new(big.Int)
	for _, g := range groups {
		if len(g) == 0 {
			return new(big.Int)
		}
		total.Mul(total, size.SetInt64(int64(len(g))))
	}
	return total
}
