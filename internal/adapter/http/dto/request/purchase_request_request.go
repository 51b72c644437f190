package request

import (
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/query"
	"hotel_procurement/internal/usecase"

	"github.com/shopspring/decimal"
)

type ItemRequest struct {
	Name          string          `json:"name" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	Category      string          `json:"category"`
	Justification string          `json:"justification"`
}

// PurchaseRequestRequest is the body for creating or editing a request.
// Submit is ignored on edit.
type PurchaseRequestRequest struct {
	BranchID   string        `json:"branchId" binding:"required"`
	Department string        `json:"department" binding:"required"`
	Items      []ItemRequest `json:"items" binding:"required,min=1,dive"`
	Submit     bool          `json:"submit"`
}

func (r PurchaseRequestRequest) ToInput() usecase.RequestInput {
	items := make([]entities.PurchaseRequestItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PurchaseRequestItem{
			Name:          strings.TrimSpace(it.Name),
			Quantity:      it.Quantity,
			Unit:          strings.TrimSpace(it.Unit),
			EstimatedCost: it.EstimatedCost,
			Category:      strings.TrimSpace(it.Category),
			Justification: strings.TrimSpace(it.Justification),
		})
	}
	return usecase.RequestInput{
		BranchID:   strings.TrimSpace(r.BranchID),
		Department: entities.Department(strings.TrimSpace(r.Department)),
		Items:      items,
	}
}

// CommentRequest carries the optional comment of approve, purchase and bank round.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// ReasonRequest carries the mandatory reason of reject and return.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListRequestsQuery holds the list filters from the query string.
// status may repeat or be comma separated.
type ListRequestsQuery struct {
	Search      string   `form:"search"`
	BranchID    string   `form:"branchId"`
	Department  string   `form:"department"`
	Status      []string `form:"status"`
	MinTotal    string   `form:"minTotal"`
	MaxTotal    string   `form:"maxTotal"`
	RequesterID string   `form:"requesterId"`
}

// ToFilter converts the query. Malformed amounts are reported by field name.
func (q ListRequestsQuery) ToFilter() (query.Filter, string, error) {
	f := query.Filter{
		Search:      strings.TrimSpace(q.Search),
		BranchID:    strings.TrimSpace(q.BranchID),
		Department:  entities.Department(strings.TrimSpace(q.Department)),
		RequesterID: strings.TrimSpace(q.RequesterID),
	}
	for _, raw := range q.Status {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Statuses = append(f.Statuses, entities.RequestStatus(s))
			}
		}
	}
	if v := strings.TrimSpace(q.MinTotal); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return query.Filter{}, "minTotal", err
		}
		f.MinTotal = &d
	}
	if v := strings.TrimSpace(q.MaxTotal); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return query.Filter{}, "maxTotal", err
		}
		f.MaxTotal = &d
	}
	return f, "", nil
}

type ConfirmInvoiceRequest struct {
	PreviewID string `json:"previewId" binding:"required"`
}
