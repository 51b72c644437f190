// Package query derives read-only views over the request set. Nothing here
// mutates a request.
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/workflow"

	"github.com/shopspring/decimal"
)

// Visible applies the branch and ownership scoping for viewer.
func Visible(r *entities.PurchaseRequest, viewer entities.User) bool {
	if viewer.Role.SeesAllBranches() {
		return true
	}
	if viewer.Role == entities.RoleRequester && r.Requester.ID == viewer.ID {
		return true
	}
	return viewer.HasBranch(r.Branch.ID)
}

// Filter holds the optional list filters. Zero values match everything and
// set fields are combined with AND.
type Filter struct {
	Search      string
	BranchID    string
	Department  entities.Department
	Statuses    []entities.RequestStatus
	MinTotal    *decimal.Decimal
	MaxTotal    *decimal.Decimal
	RequesterID string
}

func (f Filter) Matches(r *entities.PurchaseRequest) bool {
	if f.BranchID != "" && r.Branch.ID != f.BranchID {
		return false
	}
	if f.Department != "" && r.Department != f.Department {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, r.Status) {
		return false
	}
	if f.MinTotal != nil && r.TotalEstimatedCost.LessThan(*f.MinTotal) {
		return false
	}
	if f.MaxTotal != nil && r.TotalEstimatedCost.GreaterThan(*f.MaxTotal) {
		return false
	}
	if f.RequesterID != "" && r.Requester.ID != f.RequesterID {
		return false
	}
	return matchesSearch(r, f.Search)
}

func matchesSearch(r *entities.PurchaseRequest, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.ID), term) {
		return true
	}
	if r.ReferenceNumber > 0 && strings.Contains(strconv.FormatInt(r.ReferenceNumber, 10), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Requester.Name), term) {
		return true
	}
	for _, it := range r.Items {
		if strings.Contains(strings.ToLower(it.Name), term) {
			return true
		}
	}
	return false
}

func containsStatus(list []entities.RequestStatus, s entities.RequestStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Apply returns the requests viewer may see that match f, newest first.
func Apply(requests []*entities.PurchaseRequest, viewer entities.User, f Filter) []*entities.PurchaseRequest {
	out := make([]*entities.PurchaseRequest, 0, len(requests))
	for _, r := range requests {
		if Visible(r, viewer) && f.Matches(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Analytics is the dashboard summary for one viewer.
type Analytics struct {
	AwaitingMyAction   int             `json:"awaitingMyAction"`
	PendingSpend       decimal.Decimal `json:"pendingSpend"`
	CompletedThisMonth int             `json:"completedThisMonth"`
	OverpricedItems    int             `json:"overpricedItems"`
	TotalRequests      int             `json:"totalRequests"`
}

// ComputeAnalytics summarizes the requests visible to viewer. A request counts
// as completed this month when it is COMPLETED and its completion entry falls
// in now's calendar month.
func ComputeAnalytics(requests []*entities.PurchaseRequest, viewer entities.User, now time.Time, completionActions []entities.HistoryAction) Analytics {
	a := Analytics{PendingSpend: decimal.Zero}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	for _, r := range requests {
		if !Visible(r, viewer) {
			continue
		}
		a.TotalRequests++
		if role, ok := workflow.AuthorizedRole(r.Status); ok && role == viewer.Role {
			a.AwaitingMyAction++
		}
		if !r.Status.IsTerminal() {
			a.PendingSpend = a.PendingSpend.Add(r.TotalEstimatedCost)
		}
		if r.Status == entities.StatusCompleted {
			if at, ok := r.CompletedAt(completionActions); ok {
				at = at.In(now.Location())
				if !at.Before(monthStart) && at.Before(monthEnd) {
					a.CompletedThisMonth++
				}
			}
		}
		if r.Invoice != nil {
			a.OverpricedItems += r.Invoice.Analysis.OverpricedCount()
		}
	}
	return a
}
