package kvstore

import (
	"context"
	"sync"
)

// MemoryStore keeps records in a map. It backs tests and is the degraded
// fallback when the database cannot be opened: the terminal keeps selling,
// it just loses the records on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.records[key] = stored
	return nil
}
