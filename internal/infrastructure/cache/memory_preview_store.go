package cache

import (
	"context"
	"sync"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"
)

type memoryEntry struct {
	preview   entities.InvoicePreview
	expiresAt time.Time
}

// MemoryPreviewStore is the single-process preview store. Expired entries are
// dropped lazily on access.
type MemoryPreviewStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ interfaces.IPreviewStore = (*MemoryPreviewStore)(nil)

func NewMemoryPreviewStore() *MemoryPreviewStore {
	return &MemoryPreviewStore{entries: map[string]memoryEntry{}, now: time.Now}
}

// WithClock replaces the time source.
func (s *MemoryPreviewStore) WithClock(now func() time.Time) *MemoryPreviewStore {
	s.now = now
	return s
}

func (s *MemoryPreviewStore) Save(_ context.Context, p entities.InvoicePreview, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[p.ID] = memoryEntry{preview: p, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryPreviewStore) Get(_ context.Context, id string) (entities.InvoicePreview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return entities.InvoicePreview{}, entities.NotFoundf("invoice preview %s", id)
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return entities.InvoicePreview{}, entities.NotFoundf("invoice preview %s", id)
	}
	return e.preview, nil
}

func (s *MemoryPreviewStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
