package request

import (
	"testing"

	"hotel_procurement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestPurchaseRequestRequest_ToInput(t *testing.T) {
	r := PurchaseRequestRequest{
		BranchID:   " b1 ",
		Department: " Maintenance",
		Items: []ItemRequest{{
			Name:          "  Paint ",
			Quantity:      decimal.NewFromInt(3),
			Unit:          " l ",
			EstimatedCost: decimal.RequireFromString("19.90"),
		}},
	}
	in := r.ToInput()
	if in.BranchID != "b1" || in.Department != entities.DepartmentMaintenance {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Items) != 1 || in.Items[0].Name != "Paint" || in.Items[0].Unit != "l" {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
}

func TestListRequestsQuery_ToFilter(t *testing.T) {
	t.Run("statuses and amounts", func(t *testing.T) {
		q := ListRequestsQuery{
			Status:   []string{"draft, rejected", "", "completed"},
			MinTotal: "10",
			MaxTotal: " 99.5 ",
		}
		f, field, err := q.ToFilter()
		if err != nil {
			t.Fatalf("unexpected error on %s: %v", field, err)
		}
		if len(f.Statuses) != 3 || f.Statuses[1] != entities.StatusRejected {
			t.Fatalf("unexpected statuses: %v", f.Statuses)
		}
		if !f.MinTotal.Equal(decimal.NewFromInt(10)) || !f.MaxTotal.Equal(decimal.RequireFromString("99.5")) {
			t.Fatalf("unexpected bounds: %s %s", f.MinTotal, f.MaxTotal)
		}
	})

	t.Run("empty amounts stay unset", func(t *testing.T) {
		f, _, err := ListRequestsQuery{}.ToFilter()
		if err != nil || f.MinTotal != nil || f.MaxTotal != nil {
			t.Fatalf("expected open filter, got %+v, %v", f, err)
		}
	})

	t.Run("malformed amount names the field", func(t *testing.T) {
		_, field, err := ListRequestsQuery{MaxTotal: "lots"}.ToFilter()
		if err == nil || field != "maxTotal" {
			t.Fatalf("expected maxTotal error, got %q, %v", field, err)
		}
	})
}

func TestSupplierRequest_ToSupplier(t *testing.T) {
	s := SupplierRequest{
		Name:            "Acme",
		Category:        " Cleaning ",
		Representatives: []SalesRepresentativeRequest{{Name: " Omar ", Contact: " 555 "}},
		Branches:        []string{"b1"},
	}.ToSupplier()
	if s.Category != "Cleaning" || s.Representatives[0].Name != "Omar" || s.Representatives[0].Contact != "555" {
		t.Fatalf("unexpected supplier: %+v", s)
	}
}

func TestRoleRequest_ToDefinition(t *testing.T) {
	def := RoleRequest{Name: "auditor", Permissions: []string{" completed "}}.ToDefinition()
	if def.Name != entities.RoleAuditor || len(def.Permissions) != 1 || def.Permissions[0] != entities.StatusCompleted {
		t.Fatalf("unexpected definition: %+v", def)
	}
}
