package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_procurement/internal/domain/entities"
)

func TestMemoryPreviewStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryPreviewStore().WithClock(func() time.Time { return now })

	if err := s.Save(ctx, entities.InvoicePreview{ID: "p1", RequestID: "r1"}, time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Get(ctx, "p1")
	if err != nil || got.RequestID != "r1" {
		t.Fatalf("expected preview, got %+v, %v", got, err)
	}

	now = now.Add(time.Minute)
	if _, err := s.Get(ctx, "p1"); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected expired preview to be gone, got %v", err)
	}

	_ = s.Save(ctx, entities.InvoicePreview{ID: "p2"}, time.Minute)
	_ = s.Delete(ctx, "p2")
	if _, err := s.Get(ctx, "p2"); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected deleted preview to be gone, got %v", err)
	}
}
