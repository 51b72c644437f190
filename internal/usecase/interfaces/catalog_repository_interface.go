package interfaces

import (
	"context"

	"hotel_procurement/internal/domain/entities"
)

// ICatalogRepository reads the item catalog. Writes only happen through
// IReconciliationRepository.Commit.
type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.CatalogItem, error)
	GetByKeys(ctx context.Context, keys []string) ([]entities.CatalogItem, error)
}
