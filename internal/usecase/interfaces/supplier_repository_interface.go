package interfaces

import (
	"context"

	"hotel_procurement/internal/domain/entities"
)

// ISupplierRepository persists suppliers keyed by normalized name.
// Get returns (nil, nil) when the supplier is unknown.
type ISupplierRepository interface {
	List(ctx context.Context) ([]entities.Supplier, error)
	Get(ctx context.Context, name string) (*entities.Supplier, error)
	Put(ctx context.Context, s entities.Supplier) error
}
