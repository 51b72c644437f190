package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func item(name string, qty, cost string) PurchaseRequestItem {
	return PurchaseRequestItem{
		ID:            name,
		Name:          name,
		Quantity:      decimal.RequireFromString(qty),
		EstimatedCost: decimal.RequireFromString(cost),
		Justification: "needed",
	}
}

func TestNewDraft(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	requester := UserSnapshot{ID: "u1", Name: "Alice", Role: RoleRequester}
	branch := Branch{ID: "b1", Name: "Cairo Downtown"}

	t.Run("computes total", func(t *testing.T) {
		r, err := NewDraft("r1", requester, branch, DepartmentHousekeeping, []PurchaseRequestItem{
			item("Towels", "10", "12.50"),
			item("Soap", "3", "0.10"),
		}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.TotalEstimatedCost.Equal(decimal.RequireFromString("125.30")) {
			t.Fatalf("expected 125.30, got %s", r.TotalEstimatedCost)
		}
		if r.Status != StatusDraft || r.ReferenceNumber != 0 || len(r.ApprovalHistory) != 0 {
			t.Fatalf("unexpected draft: %+v", r)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := map[string][]PurchaseRequestItem{
			"empty":         nil,
			"zero quantity": {item("Towels", "0", "1")},
			"negative cost": {item("Towels", "1", "-1")},
			"missing name":  {item("  ", "1", "1")},
		}
		for name, items := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := NewDraft("r1", requester, branch, DepartmentHousekeeping, items, now)
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
			})
		}
	})

	t.Run("unknown department", func(t *testing.T) {
		_, err := NewDraft("r1", requester, branch, Department("Spa"), []PurchaseRequestItem{item("x", "1", "1")}, now)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestValidateItems_JustificationOnSubmit(t *testing.T) {
	it := item("Towels", "1", "1")
	it.Justification = " "
	if err := ValidateItems([]PurchaseRequestItem{it}, false); err != nil {
		t.Fatalf("draft should not require justification, got %v", err)
	}
	if err := ValidateItems([]PurchaseRequestItem{it}, true); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestPurchaseRequest_Edit(t *testing.T) {
	now := time.Now()
	r, _ := NewDraft("r1", UserSnapshot{ID: "u1"}, Branch{ID: "b1"}, DepartmentMaintenance, []PurchaseRequestItem{item("a", "1", "1")}, now)

	if err := r.Edit([]PurchaseRequestItem{item("b", "2", "5")}, Branch{ID: "b2"}, DepartmentProjects, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.TotalEstimatedCost.Equal(decimal.NewFromInt(10)) || r.Branch.ID != "b2" || r.Department != DepartmentProjects {
		t.Fatalf("edit not applied: %+v", r)
	}
	if len(r.ApprovalHistory) != 0 {
		t.Fatalf("edit must not write history")
	}

	r.Transition(StatusPendingHMApproval, ApprovalHistoryEntry{Action: ActionSubmitted, Timestamp: now})
	if err := r.Edit([]PurchaseRequestItem{item("b", "2", "5")}, Branch{ID: "b2"}, DepartmentProjects, now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPurchaseRequest_RemoveAttachment(t *testing.T) {
	now := time.Now()
	r, _ := NewDraft("r1", UserSnapshot{ID: "u1"}, Branch{ID: "b1"}, DepartmentMaintenance, []PurchaseRequestItem{item("a", "1", "1")}, now)
	r.AddAttachment(Attachment{ID: "a1", UploadedBy: UserSnapshot{ID: "u2"}, UploadedAt: now})
	r.AddAttachment(Attachment{ID: "a2", UploadedBy: UserSnapshot{ID: "u2"}, UploadedAt: now})

	if _, err := r.RemoveAttachment("a1", User{ID: "u3", Role: RolePurchasingRep}, now); !errors.Is(err, ErrAuthorization) {
		t.Fatalf("expected ErrAuthorization, got %v", err)
	}
	if _, err := r.RemoveAttachment("missing", User{ID: "u2"}, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := r.RemoveAttachment("a1", User{ID: "u2"}, now); err != nil {
		t.Fatalf("uploader removal failed: %v", err)
	}
	if _, err := r.RemoveAttachment("a2", User{ID: "x", Role: RoleAdmin}, now); err != nil {
		t.Fatalf("admin removal failed: %v", err)
	}
	if len(r.Attachments) != 0 {
		t.Fatalf("expected no attachments, got %d", len(r.Attachments))
	}
}

func TestPurchaseRequest_CompletedAt(t *testing.T) {
	t1 := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	r := &PurchaseRequest{ApprovalHistory: []ApprovalHistoryEntry{
		{Action: ActionSubmitted, Timestamp: t1},
		{Action: ActionBankRoundCompleted, Timestamp: t2},
		{Action: ActionApproved, Timestamp: t3},
	}}

	got, ok := r.CompletedAt([]HistoryAction{ActionBankRoundCompleted})
	if !ok || !got.Equal(t2) {
		t.Fatalf("expected %v, got %v", t2, got)
	}

	got, ok = r.CompletedAt([]HistoryAction{"Unknown"})
	if !ok || !got.Equal(t3) {
		t.Fatalf("expected fallback %v, got %v", t3, got)
	}

	if _, ok := (&PurchaseRequest{}).CompletedAt(nil); ok {
		t.Fatalf("expected no completion time for empty history")
	}
}

func TestSupplier_HasRepresentative(t *testing.T) {
	s := Supplier{Representatives: []SalesRepresentative{{Name: "Omar", Contact: "0100"}}}
	if !s.HasRepresentative(SalesRepresentative{Name: " omar ", Contact: "0999"}) {
		t.Fatalf("expected case-insensitive name match")
	}
	if !s.HasRepresentative(SalesRepresentative{Name: "Other", Contact: "0100"}) {
		t.Fatalf("expected contact match")
	}
	if s.HasRepresentative(SalesRepresentative{Name: "Other", Contact: "0200"}) {
		t.Fatalf("expected no match")
	}
}
