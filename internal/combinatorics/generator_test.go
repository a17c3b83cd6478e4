package combinatorics_test

import (
	"fmt"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combinator/internal/combinatorics"
	"combinator/internal/domain"
)

// positions returns n distinct placeholder words so permutations can be
// checked for distinctness by value.
func positions(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "w" + strconv.Itoa(i)
	}
	return out
}

func TestPermutations_ExhaustiveSmall(t *testing.T) {
	for n := 0; n <= 6; n++ {
		for k := 0; k <= n+1; k++ {
			words := positions(n)
			seen := map[string]struct{}{}
			for c := range combinatorics.Permutations(words, k) {
				require.Len(t, c, k)
				require.Lenf(t, uniq(c), k, "repeated position in %v", c)
				key := c.String()
				_, dup := seen[key]
				require.Falsef(t, dup, "duplicate candidate %q (n=%d k=%d)", key, n, k)
				seen[key] = struct{}{}
			}
			want := combinatorics.CountPermutations(n, k).Int64()
			assert.EqualValuesf(t, want, len(seen), "n=%d k=%d", n, k)
		}
	}
}

func TestPermutations_LexicographicOrder(t *testing.T) {
	var got []string
	for c := range combinatorics.Permutations([]string{"a", "b", "c"}, 2) {
		got = append(got, c.Compact())
	}
	assert.Equal(t, []string{"ab", "ac", "ba", "bc", "ca", "cb"}, got)
}

func TestPermutations_DuplicateWordsAreDistinctPositions(t *testing.T) {
	var got []string
	for c := range combinatorics.Permutations([]string{"x", "x", "y"}, 2) {
		got = append(got, c.String())
	}
	assert.Len(t, got, 6)
	assert.Equal(t, 2, countOf(got, "x x"))
}

func TestPermutations_EarlyStop(t *testing.T) {
	n := 0
	for range combinatorics.Permutations(positions(10), 7) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestPermutations_CandidatesAreIndependentSlices(t *testing.T) {
	var all []domain.Candidate
	for c := range combinatorics.Permutations([]string{"a", "b", "c"}, 3) {
		all = append(all, c)
	}
	all[0][0] = "mutated"
	assert.Equal(t, "b", all[2][0])
}

func TestMultiCartesianProduct_OneWordPerGroupInOrder(t *testing.T) {
	groups := [][]string{{"a", "b"}, {"1", "2", "3"}, {"x"}}
	var got []string
	for c := range combinatorics.MultiCartesianProduct(groups) {
		require.Len(t, c, len(groups))
		for i, w := range c {
			require.Contains(t, groups[i], w)
		}
		got = append(got, c.Compact())
	}
	assert.Equal(t, []string{"a1x", "a2x", "a3x", "b1x", "b2x", "b3x"}, got)
	assert.EqualValues(t, combinatorics.CountMultiCartesianProduct(groups).Int64(), len(got))
}

func TestMultiCartesianProduct_CountMatchesSizes(t *testing.T) {
	for _, sizes := range [][]int{{1}, {2, 2}, {3, 1, 4}, {2, 3, 2, 2}, {5, 0, 2}} {
		t.Run(fmt.Sprint(sizes), func(t *testing.T) {
			groups := make([][]string, len(sizes))
			for i, s := range sizes {
				groups[i] = positions(s)
			}
			n := 0
			for range combinatorics.MultiCartesianProduct(groups) {
				n++
			}
			assert.EqualValues(t, combinatorics.CountMultiCartesianProduct(groups).Int64(), n)
		})
	}
}

func TestMultiCartesianProduct_NoGroups(t *testing.T) {
	for range combinatorics.MultiCartesianProduct(nil) {
		t.Fatal("unexpected candidate")
	}
}

func TestEnumerateAndSize_AgreePerStrategy(t *testing.T) {
	words := domain.WordSet{{"a", "b"}, {"c"}, {"d", "e", "f"}}
	for _, cfg := range []domain.SearchConfig{
		{Strategy: domain.StrategyPermutations, Words: words, Length: 3},
		{Strategy: domain.StrategyPermutations, Words: words, Length: 6},
		{Strategy: domain.StrategyMultiCartesianProduct, Words: words},
	} {
		t.Run(cfg.Strategy.String(), func(t *testing.T) {
			seq, err := combinatorics.Enumerate(cfg)
			require.NoError(t, err)
			size, err := combinatorics.Size(cfg)
			require.NoError(t, err)

			n := 0
			for range seq {
				n++
			}
			assert.EqualValues(t, size.Int64(), n)
		})
	}
}

func TestSize_ZeroLengthIsOneEmptyCandidate(t *testing.T) {
	cfg := domain.SearchConfig{Strategy: domain.StrategyPermutations, Words: domain.WordSet{positions(3)}}
	size, err := combinatorics.Size(cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 1, size.Int64())
	require.NoError(t, combinatorics.Validate(cfg))

	seq, err := combinatorics.Enumerate(cfg)
	require.NoError(t, err)
	var got []domain.Candidate
	for c := range seq {
		got = append(got, c)
	}
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestValidate(t *testing.T) {
	words := domain.WordSet{{"a", "b"}, {}, {"c"}}

	err := combinatorics.Validate(domain.SearchConfig{Strategy: domain.StrategyMultiCartesianProduct, Words: words})
	assert.ErrorIs(t, err, domain.ErrEmptyGroup)

	err = combinatorics.Validate(domain.SearchConfig{Strategy: domain.StrategyPermutations, Words: words, Length: 3})
	assert.NoError(t, err)

	err = combinatorics.Validate(domain.SearchConfig{Strategy: domain.StrategyPermutations, Words: words, Length: 4})
	assert.ErrorIs(t, err, domain.ErrLengthExceedsWords)

	err = combinatorics.Validate(domain.SearchConfig{Strategy: domain.StrategyPermutations, Words: words, Length: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidLength)

	err = combinatorics.Validate(domain.SearchConfig{Strategy: domain.StrategyPermutations})
	assert.ErrorIs(t, err, domain.ErrNoWords)
}

func uniq(c domain.Candidate) []string {
	s := slices.Clone([]string(c))
	slices.Sort(s)
	return slices.Compact(s)
}

func countOf(list []string, v string) int {
	n := 0
	for _, s := range list {
		if s == v {
			n++
		}
	}
	return n
}
