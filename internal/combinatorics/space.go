package combinatorics

import (
	"fmt"
	"iter"
	"math/big"

	"combinator/internal/domain"
)

// Enumerate returns the candidate sequence selected by cfg.Strategy.
func Enumerate(cfg domain.SearchConfig) (iter.Seq[domain.Candidate], error) {
	switch cfg.Strategy {
	case domain.StrategyPermutations:
		return Permutations(cfg.Words.Flatten(), cfg.Length), nil
	case domain.StrategyMultiCartesianProduct:
		return MultiCartesianProduct(cfg.Words), nil
	default:
		return nil, fmt.Errorf("unknown strategy %s", cfg.Strategy)
	}
}

// Size returns the number of candidates Enumerate would yield for cfg, without
// generating any of them.
func Size(cfg domain.SearchConfig) (*big.Int, error) {
	switch cfg.Strategy {
	case domain.StrategyPermutations:
		return CountPermutations(len(cfg.Words.Flatten()), cfg.Length), nil
	case domain.StrategyMultiCartesianProduct:
		return CountMultiCartesianProduct(cfg.Words), nil
	default:
		return nil, fmt.Errorf("unknown strategy %s", cfg.Strategy)
	}
}

// Validate reports configuration errors that would make a search over cfg
// meaningless.
func Validate(cfg domain.SearchConfig) error {
	if len(cfg.Words) == 0 {
		return domain.ErrNoWords
	}
	switch cfg.Strategy {
	case domain.StrategyPermutations:
		n, k := len(cfg.Words.Flatten()), cfg.Length
		if k < 0 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidLength, k)
		}
		if k > n {
			return fmt.Errorf("%w: length %d, %d words", domain.ErrLengthExceedsWords, k, n)
		}
	case domain.StrategyMultiCartesianProduct:
		for i, g := range cfg.Words {
			if len(g) == 0 {
				return fmt.Errorf("%w: group %d", domain.ErrEmptyGroup, i)
			}
		}
	default:
		return fmt.Errorf("unknown strategy %s", cfg.Strategy)
	}
	return nil
}
