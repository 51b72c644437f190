package interfaces

import (
	"context"

	"hotel_procurement/internal/domain/entities"
)

// ReconciliationCommit is the unit written when an invoice is confirmed.
type ReconciliationCommit struct {
	Request  *entities.PurchaseRequest
	Catalog  []entities.CatalogItem
	Supplier entities.Supplier
}

// IReconciliationRepository writes catalog entries, the supplier and the
// request (with its version check) all or nothing.
type IReconciliationRepository interface {
	Commit(ctx context.Context, c ReconciliationCommit) error
}
