package query

import (
	"testing"
	"time"

	"hotel_procurement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func req(id, requesterID, branchID string, status entities.RequestStatus, total string) *entities.PurchaseRequest {
	return &entities.PurchaseRequest{
		ID:                 id,
		Requester:          entities.UserSnapshot{ID: requesterID, Name: "Name " + requesterID},
		Branch:             entities.Branch{ID: branchID},
		Status:             status,
		Department:         entities.DepartmentHousekeeping,
		TotalEstimatedCost: decimal.RequireFromString(total),
		Items:              []entities.PurchaseRequestItem{{Name: "Item " + id}},
	}
}

func ids(rs []*entities.PurchaseRequest) map[string]bool {
	out := map[string]bool{}
	for _, r := range rs {
		out[r.ID] = true
	}
	return out
}

func TestVisible(t *testing.T) {
	own := req("r1", "u1", "b2", entities.StatusDraft, "1")
	branch := req("r2", "u9", "b1", entities.StatusPendingHMApproval, "1")
	other := req("r3", "u9", "b3", entities.StatusPendingHMApproval, "1")
	all := []*entities.PurchaseRequest{own, branch, other}

	cases := []struct {
		name   string
		viewer entities.User
		want   []string
	}{
		{"admin", entities.User{ID: "x", Role: entities.RoleAdmin}, []string{"r1", "r2", "r3"}},
		{"auditor", entities.User{ID: "x", Role: entities.RoleAuditor}, []string{"r1", "r2", "r3"}},
		{"requester", entities.User{ID: "u1", Role: entities.RoleRequester, Branches: []string{"b1"}}, []string{"r1", "r2"}},
		{"manager", entities.User{ID: "u1", Role: entities.RoleHotelManager, Branches: []string{"b1"}}, []string{"r2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(all, tc.viewer, Filter{}))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for _, id := range tc.want {
				if !got[id] {
					t.Fatalf("expected %s visible, got %v", id, got)
				}
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	r := req("abc-123", "u1", "b1", entities.StatusPendingPurchase, "150")
	r.ReferenceNumber = 1042
	r.Requester.Name = "Alice Smith"
	r.Items = []entities.PurchaseRequestItem{{Name: "Luxury Bath Towels"}}

	lo := decimal.NewFromInt(100)
	hi := decimal.NewFromInt(200)
	low := decimal.NewFromInt(151)

	cases := []struct {
		name string
		f    Filter
		want bool
	}{
		{"empty", Filter{}, true},
		{"search id", Filter{Search: "ABC"}, true},
		{"search reference", Filter{Search: "1042"}, true},
		{"search requester", Filter{Search: "smith"}, true},
		{"search item", Filter{Search: "bath"}, true},
		{"search miss", Filter{Search: "coffee"}, false},
		{"branch", Filter{BranchID: "b2"}, false},
		{"department", Filter{Department: entities.DepartmentProjects}, false},
		{"status set", Filter{Statuses: []entities.RequestStatus{entities.StatusDraft, entities.StatusPendingPurchase}}, true},
		{"status miss", Filter{Statuses: []entities.RequestStatus{entities.StatusDraft}}, false},
		{"range", Filter{MinTotal: &lo, MaxTotal: &hi}, true},
		{"range miss", Filter{MinTotal: &low}, false},
		{"requester", Filter{RequesterID: "u2"}, false},
		{"conjunction", Filter{Search: "towels", BranchID: "b1", RequesterID: "u2"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Matches(r); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestComputeAnalytics(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	completedInMonth := req("c1", "u1", "b1", entities.StatusCompleted, "100")
	completedInMonth.ApprovalHistory = []entities.ApprovalHistoryEntry{
		{Action: entities.ActionSubmitted, Timestamp: now.AddDate(0, -1, 0)},
		{Action: entities.ActionBankRoundCompleted, Timestamp: now.AddDate(0, 0, -2)},
	}
	completedLastMonth := req("c2", "u1", "b1", entities.StatusCompleted, "100")
	completedLastMonth.ApprovalHistory = []entities.ApprovalHistoryEntry{
		{Action: entities.ActionBankRoundCompleted, Timestamp: time.Date(2026, 2, 28, 23, 0, 0, 0, time.UTC)},
	}
	pending := req("p1", "u1", "b1", entities.StatusPendingInvoice, "250.50")
	pending.Invoice = &entities.Invoice{Analysis: entities.InvoiceAnalysis{PriceCheck: entities.PriceCheck{
		PriceAnalysis: []entities.ItemPriceAssessment{{IsOverpriced: true}, {IsOverpriced: false}},
	}}}
	draft := req("d1", "u1", "b1", entities.StatusDraft, "10")
	rejected := req("x1", "u1", "b1", entities.StatusRejected, "999")
	hidden := req("h1", "u1", "b9", entities.StatusPendingInvoice, "1000")

	viewer := entities.User{ID: "acc", Role: entities.RoleAccountant, Branches: []string{"b1"}}
	got := ComputeAnalytics(
		[]*entities.PurchaseRequest{completedInMonth, completedLastMonth, pending, draft, rejected, hidden},
		viewer, now, []entities.HistoryAction{entities.ActionBankRoundCompleted},
	)

	if got.AwaitingMyAction != 1 {
		t.Fatalf("expected 1 awaiting, got %d", got.AwaitingMyAction)
	}
	if !got.PendingSpend.Equal(decimal.RequireFromString("260.50")) {
		t.Fatalf("expected pending spend 260.50, got %s", got.PendingSpend)
	}
	if got.CompletedThisMonth != 1 {
		t.Fatalf("expected 1 completed this month, got %d", got.CompletedThisMonth)
	}
	if got.OverpricedItems != 1 {
		t.Fatalf("expected 1 overpriced item, got %d", got.OverpricedItems)
	}
	if got.TotalRequests != 5 {
		t.Fatalf("expected 5 visible requests, got %d", got.TotalRequests)
	}
}
