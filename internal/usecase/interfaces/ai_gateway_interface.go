package interfaces

import (
	"context"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/reconciliation"
)

// IInvoiceAnalyzer extracts invoice data and runs the duplicate and market
// price checks. knownInvoiceNumbers scopes the duplicate check.
type IInvoiceAnalyzer interface {
	Analyze(ctx context.Context, document []byte, mimeType string, knownInvoiceNumbers []string) (reconciliation.AnalysisResult, error)
}

// ISupplierAdvisor ranks suppliers for a draft item list. Advisory only.
type ISupplierAdvisor interface {
	Suggest(ctx context.Context, items []entities.PurchaseRequestItem, suppliers []entities.Supplier) ([]entities.SupplierSuggestion, error)
}

// IReportWriter produces the free-text analysis of a monthly report.
type IReportWriter interface {
	Summarize(ctx context.Context, requests []*entities.PurchaseRequest, branchName, month string) (string, error)
}
