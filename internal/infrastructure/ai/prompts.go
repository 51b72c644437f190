package ai

import (
	"encoding/json"
	"fmt"

	"hotel_procurement/internal/domain/entities"
)

const invoiceCategories = "F&B, Maintenance, Linens, Engineering, Housekeeping, Furniture, Plumbing & Heating, Electrical, Painting & Decoration"

func invoicePrompt(knownInvoiceNumbers []string) string {
	known, _ := json.Marshal(nonNil(knownInvoiceNumbers))
	return fmt.Sprintf(`You are reviewing a supplier invoice for a hotel chain's procurement team.
1. Read the vendor name, invoice number, invoice date (YYYY-MM-DD), total amount and every line item.
2. For each line give its name, unit price and unit, and classify it into one of: %s.
3. If a sales representative's name and phone number are printed on the invoice, fill salesRepresentative; otherwise leave both fields empty.
4. Invoice numbers already recorded for this branch: %s. Mark the invoice as a duplicate only when its number matches one of them, and say why.
5. Acting as a procurement specialist, estimate a fair market price range in SAR for each line (for example "SAR 100-120"), decide whether the invoiced price is overpriced, and put the verdict together with the range you used in marketPriceComparison.
6. Summarise the pricing of the whole invoice in one sentence in overallAssessment.`, invoiceCategories, known)
}

type promptItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
}

type promptSupplier struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

func suggestionPrompt(items []entities.PurchaseRequestItem, suppliers []entities.Supplier, limit int) string {
	pi := make([]promptItem, 0, len(items))
	for _, it := range items {
		pi = append(pi, promptItem{Name: it.Name, Category: it.Category, Quantity: it.Quantity.String()})
	}
	ps := make([]promptSupplier, 0, len(suppliers))
	for _, s := range suppliers {
		ps = append(ps, promptSupplier{Name: s.Name, Category: s.Category, Notes: s.Notes})
	}
	itemsJSON, _ := json.MarshalIndent(pi, "", "  ")
	suppliersJSON, _ := json.MarshalIndent(ps, "", "  ")
	return fmt.Sprintf(`You advise the procurement team of a hotel chain on which suppliers to ask for a quote.

Items in the purchase request:
%s

Suppliers serving the branch:
%s

Pick up to %d suppliers from that list, best fit first, using the item categories and what each supplier specialises in. Use the supplier names exactly as given and add a short justification for each (for example "specialises in F&B" or "national distributor of maintenance parts").`, itemsJSON, suppliersJSON, limit)
}

type promptRequest struct {
	Department string           `json:"department"`
	TotalCost  string           `json:"totalCost"`
	Items      []promptLineCost `json:"items"`
}

type promptLineCost struct {
	Name     string `json:"name"`
	Cost     string `json:"cost"`
	Quantity string `json:"quantity"`
}

func reportPrompt(requests []*entities.PurchaseRequest, branchName, month string) string {
	rows := make([]promptRequest, 0, len(requests))
	for _, r := range requests {
		row := promptRequest{Department: string(r.Department), TotalCost: r.TotalEstimatedCost.StringFixed(2)}
		for _, it := range r.Items {
			row.Items = append(row.Items, promptLineCost{Name: it.Name, Cost: it.EstimatedCost.StringFixed(2), Quantity: it.Quantity.String()})
		}
		rows = append(rows, row)
	}
	data, _ := json.MarshalIndent(rows, "", "  ")
	return fmt.Sprintf(`Write a short monthly expense analysis for %s covering %s.
From the purchase requests below, point out the main spending trends and any cost-saving opportunities.
Answer in 3 or 4 bullet points.

Data:
%s`, branchName, month, data)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
