package ai

import (
	"strings"
	"testing"

	"hotel_procurement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestDecodeAnalysis(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		content := `{
			"extractedData": {
				"vendorName": " Acme ", "invoiceNumber": "INV-7", "invoiceDate": "2026-02-01", "totalAmount": 120.5,
				"items": [{"itemName": "Mop Heads", "price": 10.25, "unit": "piece", "category": "Housekeeping"}],
				"salesRepresentative": {"name": "", "contact": ""}
			},
			"duplicateCheck": {"isDuplicate": false, "reason": "new number"},
			"priceCheck": {"overallAssessment": "fine", "priceAnalysis": [{"itemName": "Mop Heads", "price": 10.25, "isOverpriced": false, "marketPriceComparison": "SAR 9-12"}]}
		}`
		res, err := decodeAnalysis(content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ExtractedData.VendorName != "Acme" {
			t.Fatalf("expected trimmed vendor, got %q", res.ExtractedData.VendorName)
		}
		if !res.ExtractedData.Items[0].Price.Equal(decimal.RequireFromString("10.25")) {
			t.Fatalf("unexpected price %s", res.ExtractedData.Items[0].Price)
		}
		if res.ExtractedData.SalesRepresentative != nil {
			t.Fatalf("expected empty sales rep to be dropped")
		}
	})

	t.Run("missing invoice number", func(t *testing.T) {
		content := `{"extractedData": {"vendorName": "Acme", "invoiceNumber": "", "totalAmount": 1, "items": [{"itemName": "x", "price": 1}]}}`
		if _, err := decodeAnalysis(content); err == nil || !strings.Contains(err.Error(), "InvoiceNumber") {
			t.Fatalf("expected validation error on InvoiceNumber, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		content := `{"extractedData": {"vendorName": "Acme", "invoiceNumber": "1", "totalAmount": 1, "items": [{"itemName": "x", "price": -1}]}}`
		if _, err := decodeAnalysis(content); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("not json", func(t *testing.T) {
		if _, err := decodeAnalysis("sorry, I cannot read this"); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}

func TestDecodeSuggestions(t *testing.T) {
	suppliers := []entities.Supplier{{Name: "Acme"}, {Name: "Bolt"}, {Name: "Crest"}, {Name: "Dune"}}
	content := `{"suggestions": [
		{"supplierName": "acme", "justification": "a"},
		{"supplierName": "Unknown Co", "justification": "?"},
		{"supplierName": "ACME", "justification": "dup"},
		{"supplierName": "Bolt", "justification": "b"},
		{"supplierName": "Crest", "justification": "c"},
		{"supplierName": "Dune", "justification": "d"}
	]}`
	got, err := decodeSuggestions(content, suppliers, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].SupplierName != "Acme" || got[2].SupplierName != "Crest" {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
}

func TestSchemaFor(t *testing.T) {
	schema, err := schemaFor[analysisWire]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties in schema, got %v", schema)
	}
	for _, key := range []string{"extractedData", "duplicateCheck", "priceCheck"} {
		if _, ok := props[key]; !ok {
			t.Fatalf("expected %s in schema", key)
		}
	}
}

func TestDocumentPart(t *testing.T) {
	if _, err := documentPart(nil, "image/png"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := documentPart([]byte("x"), "text/plain"); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
	if _, err := documentPart([]byte("x"), "application/pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInvoicePrompt(t *testing.T) {
	p := invoicePrompt([]string{"INV-1"})
	if !strings.Contains(p, `["INV-1"]`) || !strings.Contains(p, "Plumbing & Heating") {
		t.Fatalf("prompt missing known numbers or categories: %s", p)
	}
	if !strings.Contains(invoicePrompt(nil), "[]") {
		t.Fatalf("expected empty list for no known numbers")
	}
}
