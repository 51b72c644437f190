package interfaces

import "hotel_procurement/internal/domain/entities"

// IReportExporter renders a monthly report as a spreadsheet.
type IReportExporter interface {
	Export(report entities.MonthlyReport, requests []*entities.PurchaseRequest) ([]byte, error)
}
