// Package memory is an in-process blob store used by the memory backend
// and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"
)

type Store struct {
	mu    sync.Mutex
	files map[string][]byte
}

func New() *Store {
	return &Store{files: make(map[string][]byte)}
}

// Upload keeps the bytes in memory and returns a synthetic URL.
func (s *Store) Upload(_ context.Context, name, _ string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), data...)
	return fmt.Sprintf("memblob://%s", name), nil
}

// Get returns the stored bytes, for test assertions.
func (s *Store) Get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	return b, ok
}
