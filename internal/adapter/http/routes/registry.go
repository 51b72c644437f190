package routes

import (
	"hotel_procurement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathSuppliers = "/suppliers"
	PathReports   = "/reports"
)

func addRegistryRoutes(rg *gin.RouterGroup, registryHandler *handlers.RegistryHandler) {
	rg.GET(PathCatalog, registryHandler.ListCatalog)

	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.GET("", registryHandler.ListSuppliers)
		suppliers.PUT("", registryHandler.UpsertSupplier)
		suppliers.POST("/suggestions", registryHandler.SuggestSuppliers)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/monthly", reportHandler.MonthlyReport)
		reports.GET("/monthly/export", reportHandler.ExportMonthlyReport)
	}
}
