package interfaces

import (
	"context"
	"time"

	"hotel_procurement/internal/domain/entities"
)

// IPreviewStore holds unconfirmed invoice previews until they are confirmed
// or expire. Get returns ErrNotFound for unknown or expired ids.
type IPreviewStore interface {
	Save(ctx context.Context, p entities.InvoicePreview, ttl time.Duration) error
	Get(ctx context.Context, id string) (entities.InvoicePreview, error)
	Delete(ctx context.Context, id string) error
}
