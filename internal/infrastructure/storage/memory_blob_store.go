package storage

import (
	"context"
	"sync"

	"hotel_procurement/internal/usecase/interfaces"
)

// MemoryBlobStore keeps blobs in process memory under mem:// URIs.
type MemoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

var _ interfaces.IBlobStore = (*MemoryBlobStore)(nil)

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: map[string][]byte{}}
}

func (s *MemoryBlobStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uri := "mem://" + key
	s.blobs[uri] = append([]byte(nil), data...)
	return uri, nil
}

func (s *MemoryBlobStore) Delete(_ context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, uri)
	return nil
}

// Get returns a stored blob.
func (s *MemoryBlobStore) Get(uri string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[uri]
	return b, ok
}
