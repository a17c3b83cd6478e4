package store

// WithCheapScrypt lowers the scrypt cost so tests run fast.
func (s *ResultFileStore) WithCheapScrypt() *ResultFileStore {
	s.n, s.r, s.p = 1<<10, 8, 1
	return s
}
