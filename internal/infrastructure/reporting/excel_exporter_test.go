package reporting

import (
	"bytes"
	"testing"
	"time"

	"hotel_procurement/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_Export(t *testing.T) {
	report := entities.MonthlyReport{
		BranchName:   "Riyadh",
		Month:        "2026-04",
		TotalSpend:   decimal.RequireFromString("1250.50"),
		RequestCount: 1,
		DepartmentBreakdown: []entities.DepartmentSpend{
			{Department: entities.DepartmentMaintenance, Total: decimal.RequireFromString("1250.50"), Count: 1},
		},
		AIAnalysis: "- line one\n- line two",
	}
	requests := []*entities.PurchaseRequest{{
		ReferenceNumber:    1001,
		CreatedAt:          time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		Requester:          entities.UserSnapshot{Name: "Sara"},
		Department:         entities.DepartmentMaintenance,
		Status:             entities.StatusCompleted,
		TotalEstimatedCost: decimal.RequireFromString("1250.50"),
		Invoice:            &entities.Invoice{VendorName: "Acme", InvoiceNumber: "INV-9"},
	}}

	data, err := ExcelExporter{}.Export(report, requests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook did not open: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Summary", "B1"); v != "Riyadh" {
		t.Fatalf("expected branch name in B1, got %q", v)
	}
	if v, _ := f.GetCellValue("Summary", "A7"); v != "Maintenance" {
		t.Fatalf("expected department row, got %q", v)
	}
	if v, _ := f.GetCellValue("Requests", "A2"); v != "1001" {
		t.Fatalf("expected reference number, got %q", v)
	}
	if v, _ := f.GetCellValue("Requests", "I2"); v != "INV-9" {
		t.Fatalf("expected invoice number, got %q", v)
	}
}
