package reporting

import (
	"fmt"
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	requestsSheet = "Requests"
)

// ExcelExporter writes the monthly report as a two-sheet workbook: the
// summary with the department breakdown, and one row per request.
type ExcelExporter struct{}

var _ interfaces.IReportExporter = ExcelExporter{}

func (ExcelExporter) Export(report entities.MonthlyReport, requests []*entities.PurchaseRequest) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(requestsSheet); err != nil {
		return nil, err
	}

	summary := [][]any{
		{"Branch", report.BranchName},
		{"Month", report.Month},
		{"Total Spend (SAR)", report.TotalSpend.InexactFloat64()},
		{"Requests", report.RequestCount},
		{},
		{"Department", "Requests", "Total (SAR)"},
	}
	for _, d := range report.DepartmentBreakdown {
		summary = append(summary, []any{string(d.Department), d.Count, d.Total.InexactFloat64()})
	}
	if report.AIAnalysis != "" {
		summary = append(summary, []any{}, []any{"Analysis"})
		for _, line := range strings.Split(report.AIAnalysis, "\n") {
			summary = append(summary, []any{line})
		}
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return nil, err
	}

	rows := [][]any{{"Reference", "Created", "Requester", "Department", "Status", "Items", "Total (SAR)", "Vendor", "Invoice Number"}}
	for _, r := range requests {
		vendor, number := "", ""
		if r.Invoice != nil {
			vendor, number = r.Invoice.VendorName, r.Invoice.InvoiceNumber
		}
		rows = append(rows, []any{
			r.ReferenceNumber,
			r.CreatedAt.Format("2006-01-02"),
			r.Requester.Name,
			string(r.Department),
			string(r.Status),
			len(r.Items),
			r.TotalEstimatedCost.InexactFloat64(),
			vendor,
			number,
		})
	}
	if err := writeRows(f, requestsSheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
