package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseRequestItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	Category      string          `json:"category"`
	Justification string          `json:"justification"`
}

func (i PurchaseRequestItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.EstimatedCost)
}

// ValidateItems checks the item list. Justification is only required once the
// request leaves DRAFT.
func ValidateItems(items []PurchaseRequestItem, submitting bool) error {
	if len(items) == 0 {
		return Validationf("at least one item is required")
	}
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return Validationf("item %d: name is required", i+1)
		}
		if !it.Quantity.IsPositive() {
			return Validationf("item %q: quantity must be greater than zero", it.Name)
		}
		if it.EstimatedCost.IsNegative() {
			return Validationf("item %q: estimated cost must not be negative", it.Name)
		}
		if submitting && strings.TrimSpace(it.Justification) == "" {
			return Validationf("item %q: justification is required", it.Name)
		}
	}
	return nil
}

// PurchaseRequest is the request aggregate.
//
// Domain notes:
//   - TotalEstimatedCost always equals the sum of quantity * estimated cost.
//   - ApprovalHistory only grows; every status change appends exactly one entry.
//   - ReferenceNumber is zero until the first non-draft submission.
//   - Version is bumped by the repository on every successful write.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: branch_id-index (PK: branch_id)
//   - the aggregate is stored as a JSON document; version, status,
//     reference number and invoice number are duplicated as top-level attributes
type PurchaseRequest struct {
	ID                 string                 `json:"id"`
	ReferenceNumber    int64                  `json:"referenceNumber,omitempty"`
	Requester          UserSnapshot           `json:"requester"`
	Status             RequestStatus          `json:"status"`
	Items              []PurchaseRequestItem  `json:"items"`
	TotalEstimatedCost decimal.Decimal        `json:"totalEstimatedCost"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
	ApprovalHistory    []ApprovalHistoryEntry `json:"approvalHistory"`
	Department         Department             `json:"department"`
	Branch             Branch                 `json:"branch"`
	Invoice            *Invoice               `json:"invoice,omitempty"`
	Attachments        []Attachment           `json:"attachments"`
	Version            int64                  `json:"version"`
}

// NewDraft builds a request in DRAFT. Submission is a separate workflow step.
func NewDraft(id string, requester UserSnapshot, branch Branch, department Department, items []PurchaseRequestItem, now time.Time) (*PurchaseRequest, error) {
	if !department.Valid() {
		return nil, Validationf("unknown department %q", department)
	}
	if strings.TrimSpace(branch.ID) == "" {
		return nil, Validationf("branch is required")
	}
	if err := ValidateItems(items, false); err != nil {
		return nil, err
	}
	r := &PurchaseRequest{
		ID:              id,
		Requester:       requester,
		Status:          StatusDraft,
		Items:           append([]PurchaseRequestItem(nil), items...),
		CreatedAt:       now,
		UpdatedAt:       now,
		ApprovalHistory: []ApprovalHistoryEntry{},
		Department:      department,
		Branch:          branch,
		Attachments:     []Attachment{},
	}
	r.RecalculateTotal()
	return r, nil
}

func (r *PurchaseRequest) RecalculateTotal() {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.LineTotal())
	}
	r.TotalEstimatedCost = total
}

// CanModify reports whether actor may edit, resubmit or re-scope the request.
func (r *PurchaseRequest) CanModify(actor User) bool {
	return actor.Role.IsAdmin() || actor.ID == r.Requester.ID
}

// Edit replaces items, branch and department. Only allowed in DRAFT; no history is written.
func (r *PurchaseRequest) Edit(items []PurchaseRequestItem, branch Branch, department Department, now time.Time) error {
	if r.Status != StatusDraft {
		return InvalidTransitionf("request %s can only be edited in draft, current status %s", r.ID, r.Status)
	}
	if !department.Valid() {
		return Validationf("unknown department %q", department)
	}
	if strings.TrimSpace(branch.ID) == "" {
		return Validationf("branch is required")
	}
	if err := ValidateItems(items, false); err != nil {
		return err
	}
	r.Items = append([]PurchaseRequestItem(nil), items...)
	r.Branch = branch
	r.Department = department
	r.RecalculateTotal()
	r.UpdatedAt = now
	return nil
}

// Transition moves the request and appends its history entry in one step.
// Callers other than the workflow engine must not use it.
func (r *PurchaseRequest) Transition(to RequestStatus, entry ApprovalHistoryEntry) {
	r.Status = to
	r.ApprovalHistory = append(r.ApprovalHistory, entry)
	r.UpdatedAt = entry.Timestamp
}

// NeedsReferenceNumber is true for a request that left DRAFT but has not been
// numbered yet. Repositories assign the number in the same write.
func (r *PurchaseRequest) NeedsReferenceNumber() bool {
	return r.Status != StatusDraft && r.ReferenceNumber == 0
}

// WasSubmitted reports whether the request ever left DRAFT.
func (r *PurchaseRequest) WasSubmitted() bool {
	return r.ReferenceNumber > 0
}

func (r *PurchaseRequest) AddAttachment(a Attachment) {
	r.Attachments = append(r.Attachments, a)
	r.UpdatedAt = a.UploadedAt
}

// RemoveAttachment drops an attachment. Only the uploader or an admin may remove it.
func (r *PurchaseRequest) RemoveAttachment(attachmentID string, actor User, now time.Time) (Attachment, error) {
	for i, a := range r.Attachments {
		if a.ID != attachmentID {
			continue
		}
		if !actor.Role.IsAdmin() && a.UploadedBy.ID != actor.ID {
			return Attachment{}, Authorizationf("only the uploader or an admin can remove attachment %s", attachmentID)
		}
		r.Attachments = append(r.Attachments[:i:i], r.Attachments[i+1:]...)
		r.UpdatedAt = now
		return a, nil
	}
	return Attachment{}, NotFoundf("attachment %s", attachmentID)
}

// CompletedAt returns the timestamp of the latest history entry whose action is
// one of completionActions, falling back to the last entry.
func (r *PurchaseRequest) CompletedAt(completionActions []HistoryAction) (time.Time, bool) {
	if len(r.ApprovalHistory) == 0 {
		return time.Time{}, false
	}
	var latest time.Time
	found := false
	for _, h := range r.ApprovalHistory {
		for _, a := range completionActions {
			if h.Action == a && (!found || h.Timestamp.After(latest)) {
				latest = h.Timestamp
				found = true
			}
		}
	}
	if found {
		return latest, true
	}
	return r.ApprovalHistory[len(r.ApprovalHistory)-1].Timestamp, true
}

// Clone returns a deep copy so stores never share slices with callers.
func (r *PurchaseRequest) Clone() *PurchaseRequest {
	if r == nil {
		return nil
	}
	out := *r
	out.Items = cloneSlice(r.Items)
	out.ApprovalHistory = cloneSlice(r.ApprovalHistory)
	out.Attachments = cloneSlice(r.Attachments)
	if r.Invoice != nil {
		inv := *r.Invoice
		inv.Analysis.ExtractedData.Items = cloneSlice(r.Invoice.Analysis.ExtractedData.Items)
		inv.Analysis.PriceCheck.PriceAnalysis = cloneSlice(r.Invoice.Analysis.PriceCheck.PriceAnalysis)
		inv.Analysis.InternalPriceCheck = cloneSlice(r.Invoice.Analysis.InternalPriceCheck)
		out.Invoice = &inv
	}
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
