package ai

import (
	"context"
	"fmt"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/reconciliation"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// MockGateway returns canned answers so the workflow can run without an API
// key. It ignores the document entirely.
type MockGateway struct {
	now func() time.Time
}

var (
	_ interfaces.IInvoiceAnalyzer = (*MockGateway)(nil)
	_ interfaces.ISupplierAdvisor = (*MockGateway)(nil)
	_ interfaces.IReportWriter    = (*MockGateway)(nil)
)

func NewMockGateway() *MockGateway {
	return &MockGateway{now: time.Now}
}

func (m *MockGateway) WithClock(now func() time.Time) *MockGateway {
	m.now = now
	return m
}

func (m *MockGateway) Analyze(ctx context.Context, _ []byte, _ string, _ []string) (reconciliation.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return reconciliation.AnalysisResult{}, entities.ExternalServiceError("mock-ai", err)
	}
	logging.GetLogger().Info("[ai][mock] returning canned invoice analysis")

	now := m.now()
	towels := decimal.NewFromInt(24)
	coffee := decimal.NewFromInt(45)
	return reconciliation.AnalysisResult{
		ExtractedData: entities.ExtractedInvoice{
			VendorName:    "Mock Vendor",
			InvoiceNumber: fmt.Sprintf("MV-%d", now.UnixMilli()),
			InvoiceDate:   now.Format("2006-01-02"),
			TotalAmount:   decimal.NewFromInt(500 + now.Unix()%2000),
			Items: []entities.ExtractedInvoiceItem{
				{ItemName: "Luxury Bath Towels", Price: towels, Unit: "piece", Category: "Linens"},
				{ItemName: "High-Quality Coffee Beans", Price: coffee, Unit: "kg", Category: "F&B"},
			},
			SalesRepresentative: &entities.SalesRepresentative{Name: "Mock Rep", Contact: "0500000000"},
		},
		DuplicateCheck: entities.DuplicateCheck{
			IsDuplicate: false,
			Reason:      "This is a mock response. No duplicate check performed.",
		},
		PriceCheck: entities.PriceCheck{
			OverallAssessment: "Mock analysis: Prices are generally reasonable, though one item is slightly above the estimated market rate.",
			PriceAnalysis: []entities.ItemPriceAssessment{
				{ItemName: "Luxury Bath Towels", Price: towels, IsOverpriced: false, MarketPriceComparison: "Price is within the expected range (SAR 22-26)."},
				{ItemName: "High-Quality Coffee Beans", Price: coffee, IsOverpriced: true, MarketPriceComparison: "Slightly above average market price. Expected range is SAR 38-42."},
			},
		},
	}, nil
}

func (m *MockGateway) Suggest(ctx context.Context, _ []entities.PurchaseRequestItem, suppliers []entities.Supplier) ([]entities.SupplierSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, entities.ExternalServiceError("mock-ai", err)
	}
	first, second := "Mock F&B Supplier", "Mock Maintenance Supplier"
	if len(suppliers) > 0 {
		first = suppliers[0].Name
	}
	if len(suppliers) > 1 {
		second = suppliers[1].Name
	}
	return []entities.SupplierSuggestion{
		{SupplierName: first, Justification: "Recommended for F&B items based on their category."},
		{SupplierName: second, Justification: "This supplier specializes in maintenance and engineering parts."},
	}, nil
}

func (m *MockGateway) Summarize(ctx context.Context, _ []*entities.PurchaseRequest, branchName, month string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", entities.ExternalServiceError("mock-ai", err)
	}
	return fmt.Sprintf("This is a mock AI analysis for %s for %s.\n"+
		"- Overall spending seems to be focused on Maintenance.\n"+
		"- Suggest exploring bulk discounts for frequently purchased items like 'LED Light Bulbs'.\n"+
		"- No major anomalies detected.", branchName, month), nil
}
