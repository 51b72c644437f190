package reconciliation

import (
	"errors"
	"reflect"
	"testing"

	"hotel_procurement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInternalPriceCheck(t *testing.T) {
	catalog := NewCatalogIndex([]entities.CatalogItem{
		{Name: "Mop Heads", EstimatedCost: d("10")},
		{Name: "Towels", EstimatedCost: d("24")},
	})
	lines := []entities.ExtractedInvoiceItem{
		{ItemName: "mop heads ", Price: d("8")},
		{ItemName: "TOWELS", Price: d("30")},
		{ItemName: "Towels", Price: d("24.00")},
		{ItemName: "Coffee Beans", Price: d("45")},
	}

	got := InternalPriceCheck(lines, catalog)
	want := []entities.PriceComparison{
		entities.ComparisonLower,
		entities.ComparisonHigher,
		entities.ComparisonSame,
		entities.ComparisonNew,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d checks, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Comparison != w {
			t.Fatalf("line %d: expected %s, got %s", i, w, got[i].Comparison)
		}
	}
	if got[0].CatalogPrice == nil || !got[0].CatalogPrice.Equal(d("10")) {
		t.Fatalf("expected catalog price 10, got %v", got[0].CatalogPrice)
	}
	if got[3].CatalogPrice != nil {
		t.Fatalf("expected no catalog price for a new item")
	}
}

func TestMergeCatalog_Ratchet(t *testing.T) {
	catalog := NewCatalogIndex([]entities.CatalogItem{{Name: "Mop Heads", Category: "Cleaning", Unit: "pcs", EstimatedCost: d("10")}})

	changed := MergeCatalog([]entities.ExtractedInvoiceItem{{ItemName: "Mop Heads", Price: d("8")}}, catalog)
	if len(changed) != 1 || !changed[0].EstimatedCost.Equal(d("8")) || changed[0].Category != "Cleaning" {
		t.Fatalf("expected ratchet to 8, got %+v", changed)
	}

	catalog = NewCatalogIndex(changed)
	if got := InternalPriceCheck([]entities.ExtractedInvoiceItem{{ItemName: "Mop Heads", Price: d("9")}}, catalog); got[0].Comparison != entities.ComparisonHigher {
		t.Fatalf("expected higher, got %s", got[0].Comparison)
	}
	if changed := MergeCatalog([]entities.ExtractedInvoiceItem{{ItemName: "Mop Heads", Price: d("9")}}, catalog); len(changed) != 0 {
		t.Fatalf("price must never be raised, got %+v", changed)
	}
}

func TestMergeCatalog_Insert(t *testing.T) {
	changed := MergeCatalog([]entities.ExtractedInvoiceItem{
		{ItemName: "Mop Heads", Price: d("10"), Unit: "pcs"},
		{ItemName: "mop heads", Price: d("7")},
		{ItemName: "Detergent", Price: d("3"), Category: "Cleaning"},
	}, CatalogIndex{})

	if len(changed) != 2 {
		t.Fatalf("expected 2 entries, got %+v", changed)
	}
	if changed[0].Name != "Detergent" || changed[0].Category != "Cleaning" {
		t.Fatalf("unexpected first entry: %+v", changed[0])
	}
	if changed[1].Name != "Mop Heads" || changed[1].Category != entities.DefaultCatalogCategory || !changed[1].EstimatedCost.Equal(d("7")) {
		t.Fatalf("unexpected second entry: %+v", changed[1])
	}
}

func TestMergeSupplier(t *testing.T) {
	t.Run("new supplier", func(t *testing.T) {
		s := MergeSupplier(nil, " Acme Linen ", "b1", &entities.SalesRepresentative{Name: "Omar", Contact: "0100"})
		if s.Name != "Acme Linen" || s.Category != entities.DefaultSupplierCategory || s.Contact != "" {
			t.Fatalf("unexpected supplier: %+v", s)
		}
		if !reflect.DeepEqual(s.Branches, []string{"b1"}) || len(s.Representatives) != 1 {
			t.Fatalf("unexpected supplier: %+v", s)
		}
	})

	t.Run("existing supplier", func(t *testing.T) {
		existing := &entities.Supplier{
			Name:            "Acme Linen",
			Category:        "Linen",
			Branches:        []string{"b1"},
			Representatives: []entities.SalesRepresentative{{Name: "Omar", Contact: "0100"}},
		}
		s := MergeSupplier(existing, "ACME LINEN", "b2", &entities.SalesRepresentative{Name: "omar", Contact: "0999"})
		if !reflect.DeepEqual(s.Branches, []string{"b1", "b2"}) {
			t.Fatalf("expected branch union, got %v", s.Branches)
		}
		if len(s.Representatives) != 1 {
			t.Fatalf("duplicate rep appended: %+v", s.Representatives)
		}
		if len(existing.Branches) != 1 {
			t.Fatalf("input supplier mutated")
		}

		s = MergeSupplier(&s, "Acme Linen", "b2", &entities.SalesRepresentative{Name: "Nour", Contact: "0200"})
		if len(s.Branches) != 2 || len(s.Representatives) != 2 {
			t.Fatalf("unexpected supplier: %+v", s)
		}
	})

	t.Run("incomplete rep ignored", func(t *testing.T) {
		s := MergeSupplier(nil, "Acme", "b1", &entities.SalesRepresentative{Name: "Omar"})
		if len(s.Representatives) != 0 {
			t.Fatalf("expected no reps, got %+v", s.Representatives)
		}
	})
}

func TestValidateExtraction(t *testing.T) {
	valid := entities.ExtractedInvoice{
		VendorName:    "Acme",
		InvoiceNumber: "INV-1",
		TotalAmount:   d("10"),
		Items:         []entities.ExtractedInvoiceItem{{ItemName: "Mop Heads", Price: d("10")}},
	}
	if err := ValidateExtraction(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(x *entities.ExtractedInvoice){
		"no vendor":      func(x *entities.ExtractedInvoice) { x.VendorName = "" },
		"no number":      func(x *entities.ExtractedInvoice) { x.InvoiceNumber = " " },
		"no items":       func(x *entities.ExtractedInvoice) { x.Items = nil },
		"negative price": func(x *entities.ExtractedInvoice) { x.Items = []entities.ExtractedInvoiceItem{{ItemName: "a", Price: d("-1")}} },
		"negative total": func(x *entities.ExtractedInvoice) { x.TotalAmount = d("-1") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			x := valid
			mutate(&x)
			if err := ValidateExtraction(x); !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestLockKeys(t *testing.T) {
	keys := LockKeys(entities.ExtractedInvoice{
		VendorName: "Acme",
		Items: []entities.ExtractedInvoiceItem{
			{ItemName: "Towels"},
			{ItemName: "mop heads"},
			{ItemName: "TOWELS"},
		},
	})
	want := []string{"catalog:mop heads", "catalog:towels", "supplier:acme"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
}
