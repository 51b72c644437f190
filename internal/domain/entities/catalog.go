package entities

import "github.com/shopspring/decimal"

const DefaultCatalogCategory = "Uncategorized"

// CatalogItem is the internal price reference for an item name.
//
// Storage model (DynamoDB):
//   - PK: name_key (NormalizeKey(Name))
//   - estimated_cost stored as a decimal string
type CatalogItem struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
}

func (c CatalogItem) Key() string {
	return NormalizeKey(c.Name)
}
