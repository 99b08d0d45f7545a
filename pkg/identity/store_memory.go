package identity

import "sync"

// MemoryStore keeps the identity in memory. Useful for tests and one-shot
// tools.
type MemoryStore struct {
	mu sync.RWMutex
	id *Identity
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored identity.
func (s *MemoryStore) Load() (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.id == nil {
		return nil, ErrNoIdentity
	}
	return s.id, nil
}

// Save stores id.
func (s *MemoryStore) Save(id *Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	return nil
}

// Delete forgets the identity.
func (s *MemoryStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = nil
	return nil
}

// Exists reports whether an identity is stored.
func (s *MemoryStore) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id != nil
}

var _ Store = (*MemoryStore)(nil)
