package handlers

import (
	"fmt"
	"net/http"

	request "hotel_procurement/internal/adapter/http/dto/request"
	"hotel_procurement/internal/usecase"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// MonthlyReport godoc
// @Summary   Monthly completed spend for a branch
// @Tags      reports
// @Produce   json
// @Param     branchId  query     string  true  "Branch"
// @Param     month     query     string  true  "Month (YYYY-MM)"
// @Success   200       {object}  entities.MonthlyReport
// @Failure   404       {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /reports/monthly [get]
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var q request.MonthlyReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	report, err := h.usecase.Monthly(c.Request.Context(), u, q.BranchID, q.Month)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportMonthlyReport godoc
// @Summary   Download the monthly report as a spreadsheet
// @Tags      reports
// @Produce   application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param     branchId  query     string  true  "Branch"
// @Param     month     query     string  true  "Month (YYYY-MM)"
// @Success   200       {file}    file
// @Failure   404       {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /reports/monthly/export [get]
func (h *ReportHandler) ExportMonthlyReport(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var q request.MonthlyReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	name, data, err := h.usecase.Export(c.Request.Context(), u, q.BranchID, q.Month)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
