package kv

import (
	"context"
	"sync"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

// MemoryStore keeps entries in a map. Values are copied in and out.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ repository.KVStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.entries == nil {
		return nil, repository.ErrStoreClosed
	}
	val, ok := s.entries[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries == nil {
		return repository.ErrStoreClosed
	}
	s.entries[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries == nil {
		return repository.ErrStoreClosed
	}
	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}
