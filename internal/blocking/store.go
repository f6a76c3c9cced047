package blocking

import "sync/atomic"

// Store holds the blocking flag shared between the admin API and the proxy.
// Implementations must be safe for concurrent use.
type Store interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	enabled atomic.Bool
}

// NewMemoryStore creates a MemoryStore with the given initial flag.
func NewMemoryStore(enabled bool) *MemoryStore {
	s := &MemoryStore{}
	s.enabled.Store(enabled)
	return s
}

// Enabled returns the current flag.
func (s *MemoryStore) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled replaces the flag.
func (s *MemoryStore) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}
