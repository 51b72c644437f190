package interfaces

import (
	"context"

	"hotel_procurement/internal/domain/entities"
)

// IPurchaseRequestRepository persists the request aggregate.
//
// Every write is a whole-aggregate replace guarded by Version:
//   - Create fails with ErrConflict when the id already exists
//   - Update fails with ErrConflict when the stored version differs from r.Version
//   - on success r.Version is incremented
//   - when r.NeedsReferenceNumber(), the next reference number is assigned in the same write
type IPurchaseRequestRepository interface {
	Create(ctx context.Context, r *entities.PurchaseRequest) error
	Update(ctx context.Context, r *entities.PurchaseRequest) error
	GetByID(ctx context.Context, id string) (*entities.PurchaseRequest, error)
	List(ctx context.Context) ([]*entities.PurchaseRequest, error)
	InvoiceNumbersByBranch(ctx context.Context, branchID string) ([]string, error)
}
