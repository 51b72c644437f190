// Package reconciliation holds the pure invoice-to-catalog rules: validating
// extractor output, the internal price check, and the catalog and supplier
// merges applied when an accountant confirms an invoice.
package reconciliation

import (
	"sort"
	"strings"

	"hotel_procurement/internal/domain/entities"
)

// AnalysisResult is what the extraction collaborator returns. It is untrusted
// until ValidateExtraction accepts it.
type AnalysisResult struct {
	ExtractedData  entities.ExtractedInvoice
	DuplicateCheck entities.DuplicateCheck
	PriceCheck     entities.PriceCheck
}

// ValidateExtraction rejects output the engine cannot reconcile.
func ValidateExtraction(x entities.ExtractedInvoice) error {
	if strings.TrimSpace(x.VendorName) == "" {
		return entities.Validationf("extracted invoice has no vendor name")
	}
	if strings.TrimSpace(x.InvoiceNumber) == "" {
		return entities.Validationf("extracted invoice has no invoice number")
	}
	if x.TotalAmount.IsNegative() {
		return entities.Validationf("extracted invoice total is negative")
	}
	if len(x.Items) == 0 {
		return entities.Validationf("extracted invoice has no line items")
	}
	for i, it := range x.Items {
		if strings.TrimSpace(it.ItemName) == "" {
			return entities.Validationf("extracted line %d has no item name", i+1)
		}
		if it.Price.IsNegative() {
			return entities.Validationf("extracted line %q has a negative price", it.ItemName)
		}
	}
	return nil
}

// CatalogIndex maps normalized item names to catalog entries.
type CatalogIndex map[string]entities.CatalogItem

func NewCatalogIndex(items []entities.CatalogItem) CatalogIndex {
	idx := make(CatalogIndex, len(items))
	for _, it := range items {
		idx[it.Key()] = it
	}
	return idx
}

// InternalPriceCheck classifies each line against the catalog.
func InternalPriceCheck(lines []entities.ExtractedInvoiceItem, catalog CatalogIndex) []entities.InternalPriceCheckItem {
	out := make([]entities.InternalPriceCheckItem, 0, len(lines))
	for _, line := range lines {
		check := entities.InternalPriceCheckItem{
			ItemName:     line.ItemName,
			InvoicePrice: line.Price,
			Comparison:   entities.ComparisonNew,
		}
		if existing, ok := catalog[entities.NormalizeKey(line.ItemName)]; ok {
			price := existing.EstimatedCost
			check.CatalogPrice = &price
			switch line.Price.Cmp(price) {
			case -1:
				check.Comparison = entities.ComparisonLower
			case 1:
				check.Comparison = entities.ComparisonHigher
			default:
				check.Comparison = entities.ComparisonSame
			}
		}
		out = append(out, check)
	}
	return out
}

// Augment combines collaborator output with the locally computed check.
func Augment(result AnalysisResult, catalog CatalogIndex) entities.InvoiceAnalysis {
	return entities.InvoiceAnalysis{
		ExtractedData:      result.ExtractedData,
		DuplicateCheck:     result.DuplicateCheck,
		PriceCheck:         result.PriceCheck,
		InternalPriceCheck: InternalPriceCheck(result.ExtractedData.Items, catalog),
	}
}

// MergeCatalog returns the catalog entries that change when lines are applied:
// known items whose price dropped are ratcheted down, unknown items are
// inserted. Prices are never raised. Entries are returned in key order.
func MergeCatalog(lines []entities.ExtractedInvoiceItem, catalog CatalogIndex) []entities.CatalogItem {
	working := make(CatalogIndex, len(catalog))
	for k, v := range catalog {
		working[k] = v
	}
	changed := map[string]entities.CatalogItem{}
	for _, line := range lines {
		key := entities.NormalizeKey(line.ItemName)
		existing, ok := working[key]
		if !ok {
			category := strings.TrimSpace(line.Category)
			if category == "" {
				category = entities.DefaultCatalogCategory
			}
			item := entities.CatalogItem{
				Name:          strings.TrimSpace(line.ItemName),
				Category:      category,
				Unit:          strings.TrimSpace(line.Unit),
				EstimatedCost: line.Price,
			}
			working[key] = item
			changed[key] = item
			continue
		}
		if line.Price.LessThan(existing.EstimatedCost) {
			existing.EstimatedCost = line.Price
			working[key] = existing
			changed[key] = existing
		}
	}

	keys := make([]string, 0, len(changed))
	for k := range changed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]entities.CatalogItem, 0, len(keys))
	for _, k := range keys {
		out = append(out, changed[k])
	}
	return out
}

// MergeSupplier upserts the invoice vendor. existing is nil when the vendor is
// unknown. The branch is unioned into the supplier's branches and rep is
// appended only when complete and not already present.
func MergeSupplier(existing *entities.Supplier, vendorName, branchID string, rep *entities.SalesRepresentative) entities.Supplier {
	var s entities.Supplier
	if existing != nil {
		s = existing.Clone()
	} else {
		s = entities.Supplier{
			Name:            strings.TrimSpace(vendorName),
			Category:        entities.DefaultSupplierCategory,
			Representatives: []entities.SalesRepresentative{},
			Branches:        []string{},
		}
	}
	if branchID != "" && !s.ServesBranch(branchID) {
		s.Branches = append(s.Branches, branchID)
	}
	if rep != nil && rep.Complete() && !s.HasRepresentative(*rep) {
		s.Representatives = append(s.Representatives, entities.SalesRepresentative{
			Name:    strings.TrimSpace(rep.Name),
			Contact: strings.TrimSpace(rep.Contact),
		})
	}
	return s
}

// LockKeys lists the registry keys a commit touches, sorted so concurrent
// commits acquire them in the same order.
func LockKeys(x entities.ExtractedInvoice) []string {
	seen := map[string]struct{}{}
	for _, it := range x.Items {
		seen["catalog:"+entities.NormalizeKey(it.ItemName)] = struct{}{}
	}
	seen["supplier:"+entities.NormalizeKey(x.VendorName)] = struct{}{}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ItemNames returns the normalized distinct item names of the invoice.
func ItemNames(x entities.ExtractedInvoice) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(x.Items))
	for _, it := range x.Items {
		k := entities.NormalizeKey(it.ItemName)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
