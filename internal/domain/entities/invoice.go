package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PriceComparison string

const (
	ComparisonLower  PriceComparison = "lower"
	ComparisonHigher PriceComparison = "higher"
	ComparisonSame   PriceComparison = "same"
	ComparisonNew    PriceComparison = "new"
)

// ExtractedInvoiceItem is one invoice line as read from the document.
type ExtractedInvoiceItem struct {
	ItemName string          `json:"itemName"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
}

type ExtractedInvoice struct {
	VendorName          string                 `json:"vendorName"`
	InvoiceNumber       string                 `json:"invoiceNumber"`
	InvoiceDate         string                 `json:"invoiceDate"`
	TotalAmount         decimal.Decimal        `json:"totalAmount"`
	Items               []ExtractedInvoiceItem `json:"items"`
	SalesRepresentative *SalesRepresentative   `json:"salesRepresentative,omitempty"`
}

type DuplicateCheck struct {
	IsDuplicate bool   `json:"isDuplicate"`
	Reason      string `json:"reason"`
}

type ItemPriceAssessment struct {
	ItemName              string          `json:"itemName"`
	Price                 decimal.Decimal `json:"price"`
	IsOverpriced          bool            `json:"isOverpriced"`
	MarketPriceComparison string          `json:"marketPriceComparison"`
}

type PriceCheck struct {
	OverallAssessment string                `json:"overallAssessment"`
	PriceAnalysis     []ItemPriceAssessment `json:"priceAnalysis"`
}

// InternalPriceCheckItem compares one invoice line against the catalog.
// CatalogPrice is nil when the item is not in the catalog.
type InternalPriceCheckItem struct {
	ItemName     string           `json:"itemName"`
	InvoicePrice decimal.Decimal  `json:"invoicePrice"`
	CatalogPrice *decimal.Decimal `json:"catalogPrice,omitempty"`
	Comparison   PriceComparison  `json:"comparison"`
}

// InvoiceAnalysis is the collaborator output augmented with the local catalog check.
type InvoiceAnalysis struct {
	ExtractedData      ExtractedInvoice         `json:"extractedData"`
	DuplicateCheck     DuplicateCheck           `json:"duplicateCheck"`
	PriceCheck         PriceCheck               `json:"priceCheck"`
	InternalPriceCheck []InternalPriceCheckItem `json:"internalPriceCheck"`
}

// OverpricedCount is the number of lines the market check flagged.
func (a InvoiceAnalysis) OverpricedCount() int {
	n := 0
	for _, p := range a.PriceCheck.PriceAnalysis {
		if p.IsOverpriced {
			n++
		}
	}
	return n
}

// Invoice is the reconciled vendor invoice attached to a request.
type Invoice struct {
	ID            string          `json:"id"`
	VendorName    string          `json:"vendorName"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   string          `json:"invoiceDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	FileURI       string          `json:"fileUri"`
	FileMimeType  string          `json:"fileMimeType"`
	Analysis      InvoiceAnalysis `json:"aiAnalysis"`
	ProcessedAt   time.Time       `json:"processedAt"`
}

// InvoicePreview is an unconfirmed reconciliation held until the accountant
// confirms or it expires. Nothing outside the preview store changes while it exists.
type InvoicePreview struct {
	ID             string          `json:"id"`
	RequestID      string          `json:"requestId"`
	RequestVersion int64           `json:"requestVersion"`
	CreatedBy      UserSnapshot    `json:"createdBy"`
	Analysis       InvoiceAnalysis `json:"analysis"`
	FileName       string          `json:"fileName"`
	MimeType       string          `json:"mimeType"`
	Document       []byte          `json:"document"`
	CreatedAt      time.Time       `json:"createdAt"`
	ExpiresAt      time.Time       `json:"expiresAt"`
}

// IsInvoiceDocumentType reports whether an invoice can be read from a
// document of this mime type (images and PDF).
func IsInvoiceDocumentType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") || mimeType == "application/pdf"
}
