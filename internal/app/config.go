package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"combinator/internal/combinatorics"
	"combinator/internal/crypto"
	"combinator/internal/domain"
)

// Config holds runtime options for building the app.
type Config struct {
	Strategy domain.Strategy

	Words       string // inline word groups, JSON or YAML, e.g. [["a","b"],["c"]]
	WordsFile   string // path to a JSON or YAML word group file; wins over Words
	Seed        string // BIP39 mnemonic
	Fingerprint string // target master fingerprint, 8 hex chars
	Length      *int   // permutation length; nil means domain.DefaultPassphraseLength
	AllWords    bool   // permute every word in the flattened list

	Workers  int    // search workers; 0 means one per CPU
	Output   string // result file, e.g. passphrase.txt
	SealKey  string // when set, the result file is sealed with this key
	LogLevel string // debug, info, warn, error

	Stderr   io.Writer // log destination; defaults to os.Stderr
	Progress io.Writer // progress bar destination; nil hides the bar
}

// LoadWords parses the configured word groups.
func (c Config) LoadWords() (domain.WordSet, error) {
	src := c.Words
	if c.WordsFile != "" {
		b, err := os.ReadFile(c.WordsFile)
		if err != nil {
			return nil, fmt.Errorf("reading word file: %w", err)
		}
		src = string(b)
	}
	if strings.TrimSpace(src) == "" {
		return nil, domain.ErrNoWords
	}

	var groups [][]string
	if err := yaml.Unmarshal([]byte(src), &groups); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidWords, err)
	}
	if len(groups) == 0 {
		return nil, domain.ErrNoWords
	}
	for i, g := range groups {
		for j, w := range g {
			if w == "" {
				return nil, fmt.Errorf("%w: group %d word %d is empty", domain.ErrInvalidWords, i, j)
			}
		}
	}
	return domain.WordSet(groups), nil
}

// CountConfig builds the part of the search configuration needed to size the
// search space. Seed and fingerprint are not required.
func (c Config) CountConfig() (domain.SearchConfig, error) {
	words, err := c.LoadWords()
	if err != nil {
		return domain.SearchConfig{}, err
	}
	sc := domain.SearchConfig{
		Strategy: c.Strategy,
		Words:    words,
		Length:   domain.DefaultPassphraseLength,
	}
	switch {
	case c.AllWords:
		sc.Length = len(words.Flatten())
	case c.Length != nil:
		if *c.Length < 0 {
			return domain.SearchConfig{}, fmt.Errorf("%w: %d", domain.ErrInvalidLength, *c.Length)
		}
		sc.Length = *c.Length
	}
	return sc, nil
}

// SearchConfig validates every input and builds the immutable configuration
// consumed by the search service.
func (c Config) SearchConfig() (domain.SearchConfig, error) {
	sc, err := c.CountConfig()
	if err != nil {
		return domain.SearchConfig{}, err
	}
	if c.Fingerprint == "" {
		return domain.SearchConfig{}, fmt.Errorf("%w: none given (--fingerprint or FINGERPRINT)", domain.ErrInvalidFingerprint)
	}
	if sc.Target, err = domain.ParseFingerprint(c.Fingerprint); err != nil {
		return domain.SearchConfig{}, err
	}
	if sc.Seed, err = c.seed(); err != nil {
		return domain.SearchConfig{}, err
	}
	if err := combinatorics.Validate(sc); err != nil {
		return domain.SearchConfig{}, err
	}
	return sc, nil
}

func (c Config) seed() (domain.Seed, error) {
	seed := domain.Seed(strings.TrimSpace(c.Seed))
	if seed == "" {
		return "", fmt.Errorf("%w: none given (--seed or SEED)", domain.ErrInvalidMnemonic)
	}
	if err := crypto.ValidateMnemonic(seed); err != nil {
		return "", err
	}
	return seed, nil
}
