package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"combinator/internal/domain"
)

// DefaultResultFile is where results are written when no path is configured.
const DefaultResultFile = "passphrase.txt"

// resultRecord is the sealed payload.
type resultRecord struct {
	Found      bool     `json:"found"`
	Passphrase []string `json:"passphrase,omitempty"`
	Strategy   string   `json:"strategy"`
	Target     string   `json:"target"`
	Evaluated  uint64   `json:"evaluated"`
}

// ResultFileStore writes search results to a single file.
type ResultFileStore struct {
	path string
	mu   sync.Mutex

	// scrypt cost parameters; tests lower them.
	n, r, p int
}

// NewResultFileStore returns a ResultFileStore writing to path.
func NewResultFileStore(path string) *ResultFileStore {
	if path == "" {
		path = DefaultResultFile
	}
	n, r, p := scryptParamsDefault()
	return &ResultFileStore{path: path, n: n, r: r, p: p}
}

// Path returns the file the store writes to.
func (s *ResultFileStore) Path() string { return s.path }

// SaveResult writes res. With an empty sealKey the file holds the plain result
// message; otherwise it holds a sealed envelope.
func (s *ResultFileStore) SaveResult(res domain.Result, sealKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sealKey == "" {
		return writeFile(s.path, []byte(res.Message()+"\n"), 0o600)
	}

	raw, err := json.Marshal(resultRecord{
		Found:      res.Found,
		Passphrase: res.Passphrase,
		Strategy:   res.Strategy.String(),
		Target:     res.Target.String(),
		Evaluated:  res.Evaluated,
	})
	if err != nil {
		return err
	}
	blob, err := seal(sealKey, raw, s.n, s.r, s.p)
	if err != nil {
		return fmt.Errorf("seal result: %w", err)
	}
	return writeFile(s.path, blob, 0o600)
}

// LoadResult opens a sealed result written by SaveResult.
func (s *ResultFileStore) LoadResult(sealKey string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sealKey == "" {
		return domain.Result{}, errors.New("seal key required")
	}
	blob, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Result{}, err
	}
	raw, err := open(sealKey, blob)
	if err != nil {
		return domain.Result{}, err
	}
	var rec resultRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Result{}, err
	}

	res := domain.Result{
		Found:      rec.Found,
		Passphrase: rec.Passphrase,
		Evaluated:  rec.Evaluated,
	}
	if rec.Strategy == domain.StrategyMultiCartesianProduct.String() {
		res.Strategy = domain.StrategyMultiCartesianProduct
	}
	if rec.Target != "" {
		if res.Target, err = domain.ParseFingerprint(rec.Target); err != nil {
			return domain.Result{}, err
		}
	}
	return res, nil
}

// Compile-time assertion that ResultFileStore implements domain.ResultStore.
var _ domain.ResultStore = (*ResultFileStore)(nil)
