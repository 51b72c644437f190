package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/reconciliation"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

// Wire types mirror what the model is asked to return. Money arrives as JSON
// numbers and is converted to decimals at the boundary.

type invoiceItemWire struct {
	ItemName string  `json:"itemName" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Category string  `json:"category" jsonschema_description:"One of the procurement categories listed in the instructions"`
}

type salesRepWire struct {
	Name    string `json:"name" jsonschema_description:"Empty when the invoice shows no sales representative"`
	Contact string `json:"contact"`
}

type extractedInvoiceWire struct {
	VendorName          string            `json:"vendorName" validate:"required"`
	InvoiceNumber       string            `json:"invoiceNumber" validate:"required"`
	InvoiceDate         string            `json:"invoiceDate" jsonschema_description:"YYYY-MM-DD"`
	TotalAmount         float64           `json:"totalAmount" validate:"gte=0"`
	Items               []invoiceItemWire `json:"items" validate:"min=1,dive"`
	SalesRepresentative salesRepWire      `json:"salesRepresentative"`
}

type duplicateCheckWire struct {
	IsDuplicate bool   `json:"isDuplicate"`
	Reason      string `json:"reason"`
}

type priceAssessmentWire struct {
	ItemName              string  `json:"itemName"`
	Price                 float64 `json:"price"`
	IsOverpriced          bool    `json:"isOverpriced"`
	MarketPriceComparison string  `json:"marketPriceComparison" jsonschema_description:"Verdict including the estimated SAR range used"`
}

type priceCheckWire struct {
	OverallAssessment string                `json:"overallAssessment"`
	PriceAnalysis     []priceAssessmentWire `json:"priceAnalysis"`
}

type analysisWire struct {
	ExtractedData  extractedInvoiceWire `json:"extractedData"`
	DuplicateCheck duplicateCheckWire   `json:"duplicateCheck"`
	PriceCheck     priceCheckWire       `json:"priceCheck"`
}

type suggestionWire struct {
	SupplierName  string `json:"supplierName" validate:"required"`
	Justification string `json:"justification"`
}

type suggestionsWire struct {
	Suggestions []suggestionWire `json:"suggestions" validate:"dive"`
}

var validate = validator.New()

// decodeAnalysis parses and validates the model output.
func decodeAnalysis(content string) (reconciliation.AnalysisResult, error) {
	var w analysisWire
	if err := json.Unmarshal([]byte(content), &w); err != nil {
		return reconciliation.AnalysisResult{}, fmt.Errorf("decode analysis: %w", err)
	}
	if err := validate.Struct(w); err != nil {
		return reconciliation.AnalysisResult{}, fmt.Errorf("invalid analysis: %s", describeValidation(err))
	}
	return w.toDomain(), nil
}

func (w analysisWire) toDomain() reconciliation.AnalysisResult {
	x := w.ExtractedData
	out := reconciliation.AnalysisResult{
		ExtractedData: entities.ExtractedInvoice{
			VendorName:    strings.TrimSpace(x.VendorName),
			InvoiceNumber: strings.TrimSpace(x.InvoiceNumber),
			InvoiceDate:   x.InvoiceDate,
			TotalAmount:   decimal.NewFromFloat(x.TotalAmount),
			Items:         make([]entities.ExtractedInvoiceItem, 0, len(x.Items)),
		},
		DuplicateCheck: entities.DuplicateCheck{
			IsDuplicate: w.DuplicateCheck.IsDuplicate,
			Reason:      w.DuplicateCheck.Reason,
		},
		PriceCheck: entities.PriceCheck{
			OverallAssessment: w.PriceCheck.OverallAssessment,
			PriceAnalysis:     make([]entities.ItemPriceAssessment, 0, len(w.PriceCheck.PriceAnalysis)),
		},
	}
	for _, it := range x.Items {
		out.ExtractedData.Items = append(out.ExtractedData.Items, entities.ExtractedInvoiceItem{
			ItemName: strings.TrimSpace(it.ItemName),
			Price:    decimal.NewFromFloat(it.Price),
			Unit:     it.Unit,
			Category: it.Category,
		})
	}
	rep := entities.SalesRepresentative{
		Name:    strings.TrimSpace(x.SalesRepresentative.Name),
		Contact: strings.TrimSpace(x.SalesRepresentative.Contact),
	}
	if rep.Complete() {
		out.ExtractedData.SalesRepresentative = &rep
	}
	for _, pa := range w.PriceCheck.PriceAnalysis {
		out.PriceCheck.PriceAnalysis = append(out.PriceCheck.PriceAnalysis, entities.ItemPriceAssessment{
			ItemName:              pa.ItemName,
			Price:                 decimal.NewFromFloat(pa.Price),
			IsOverpriced:          pa.IsOverpriced,
			MarketPriceComparison: pa.MarketPriceComparison,
		})
	}
	return out
}

// decodeSuggestions keeps only suggestions naming a known supplier, at most limit.
func decodeSuggestions(content string, suppliers []entities.Supplier, limit int) ([]entities.SupplierSuggestion, error) {
	var w suggestionsWire
	if err := json.Unmarshal([]byte(content), &w); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	if err := validate.Struct(w); err != nil {
		return nil, fmt.Errorf("invalid suggestions: %s", describeValidation(err))
	}
	known := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		known[s.Key()] = s.Name
	}
	out := []entities.SupplierSuggestion{}
	seen := map[string]bool{}
	for _, s := range w.Suggestions {
		key := entities.NormalizeKey(s.SupplierName)
		name, ok := known[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, entities.SupplierSuggestion{SupplierName: name, Justification: s.Justification})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func describeValidation(err error) string {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(ves))
	for _, ve := range ves {
		parts = append(parts, ve.Namespace()+":"+ve.Tag())
	}
	return strings.Join(parts, ", ")
}

// schemaFor builds the strict JSON schema OpenAI structured output expects.
func schemaFor[T any]() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	raw, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}
	return schema, nil
}
