package snapshot

import (
	"context"
	"slices"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

// NewMemoryStore creates a Store holding the snapshot in memory. Snapshots
// do not survive the process; suitable for tests and ephemeral containers.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return nil, ErrNotFound
	}
	return slices.Clone(s.data), nil
}

func (s *memoryStore) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = slices.Clone(data)
	s.set = true
	return nil
}

func (s *memoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.set = false
	return nil
}
