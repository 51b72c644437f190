package request

import (
	"strings"

	"hotel_procurement/internal/domain/entities"
)

type SalesRepresentativeRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

type SupplierRequest struct {
	Name            string                       `json:"name" binding:"required"`
	Category        string                       `json:"category"`
	Contact         string                       `json:"contact"`
	Representatives []SalesRepresentativeRequest `json:"representatives" binding:"dive"`
	Branches        []string                     `json:"branches"`
	Website         string                       `json:"website"`
	Notes           string                       `json:"notes"`
}

func (r SupplierRequest) ToSupplier() entities.Supplier {
	reps := make([]entities.SalesRepresentative, 0, len(r.Representatives))
	for _, rep := range r.Representatives {
		reps = append(reps, entities.SalesRepresentative{Name: strings.TrimSpace(rep.Name), Contact: strings.TrimSpace(rep.Contact)})
	}
	return entities.Supplier{
		Name:            r.Name,
		Category:        strings.TrimSpace(r.Category),
		Contact:         strings.TrimSpace(r.Contact),
		Representatives: reps,
		Branches:        r.Branches,
		Website:         strings.TrimSpace(r.Website),
		Notes:           strings.TrimSpace(r.Notes),
	}
}

type SuggestSuppliersRequest struct {
	BranchID string        `json:"branchId" binding:"required"`
	Items    []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r SuggestSuppliersRequest) ToItems() []entities.PurchaseRequestItem {
	return PurchaseRequestRequest{Items: r.Items}.ToInput().Items
}
