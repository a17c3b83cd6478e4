package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DefaultPassphraseLength is the number of words picked by the permutation
// strategy when no length is configured.
const DefaultPassphraseLength = 7

// WordSet is an ordered list of word groups. Group order and word order are
// preserved and determine the order of words in generated candidates.
type WordSet [][]string

// Flatten concatenates all groups into a single list. Duplicate words are kept
// as distinct positions.
func (ws WordSet) Flatten() []string {
	n := 0
	for _, g := range ws {
		n += len(g)
	}
	out := make([]string, 0, n)
	for _, g := range ws {
		out = append(out, g...)
	}
	return out
}

// Seed is a BIP39 mnemonic phrase.
type Seed string

// String returns the mnemonic.
func (s Seed) String() string { return string(s) }

// Fingerprint is the 4-byte hash160 prefix of a BIP32 public key.
type Fingerprint [4]byte

// String returns the lower-case hex form of the fingerprint.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// ParseFingerprint decodes an 8 character hex fingerprint. A leading "0x" is
// accepted.
func ParseFingerprint(s string) (Fingerprint, error) {
	var fp Fingerprint
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return fp, fmt.Errorf("%w: %v", ErrInvalidFingerprint, err)
	}
	if len(b) != len(fp) {
		return fp, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidFingerprint, len(fp), len(b))
	}
	copy(fp[:], b)
	return fp, nil
}

// Candidate is one ordered arrangement of words under evaluation.
type Candidate []string

// Compact joins the words with no separator. This is the passphrase form fed to
// key derivation.
func (c Candidate) Compact() string { return strings.Join(c, "") }

// String joins the words with single spaces for display.
func (c Candidate) String() string { return strings.Join(c, " ") }

// Strategy selects how candidates are generated from a WordSet.
type Strategy int

const (
	// StrategyPermutations picks ordered selections of Length distinct
	// positions from the flattened word list.
	StrategyPermutations Strategy = iota
	// StrategyMultiCartesianProduct picks exactly one word from every group,
	// in group order.
	StrategyMultiCartesianProduct
)

// String returns the command name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyPermutations:
		return "permutations"
	case StrategyMultiCartesianProduct:
		return "multi-cartesian-product"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// SearchConfig is everything a search needs. It is built once from external
// inputs and read-only for the life of the search.
type SearchConfig struct {
	Strategy Strategy
	Words    WordSet
	Seed     Seed
	Target   Fingerprint

	// Length is the number of words per candidate for StrategyPermutations.
	// It is used as given: zero yields the single empty candidate and a
	// negative length is rejected by validation.
	Length int
}

// Result is the outcome of a search.
type Result struct {
	Found      bool
	Passphrase Candidate
	Strategy   Strategy
	Target     Fingerprint
	Evaluated  uint64
}

// Message renders the result the way it is persisted for the operator.
func (r Result) Message() string {
	if !r.Found {
		return "No passphrase found"
	}
	return "Passphrase FOUND!: " + r.Passphrase.String()
}
