package handlers

import (
	"errors"
	"net/http"

	request "hotel_procurement/internal/adapter/http/dto/request"
	response "hotel_procurement/internal/adapter/http/dto/response"
	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"
	"hotel_procurement/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler runs the two-step invoice reconciliation.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// PreviewInvoice godoc
// @Summary      Analyze an invoice
// @Description  Extracts the invoice and compares it with the request without changing anything.
// @Tags         invoices
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Request ID"
// @Param        file  formData  file    true  "Invoice image or PDF"
// @Success      200   {object}  response.InvoicePreviewResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/invoice/preview [post]
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	file, appErr := readUpload(c)
	if appErr != nil {
		writeError(c, appErr)
		return
	}
	preview, err := h.usecase.Preview(c.Request.Context(), u, c.Param("id"), file)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePreview(preview))
}

// ConfirmInvoice godoc
// @Summary   Confirm an invoice preview
// @Tags      invoices
// @Accept    json
// @Produce   json
// @Param     id    path      string                         true  "Request ID"
// @Param     body  body      request.ConfirmInvoiceRequest  true  "Preview"
// @Success   200   {object}  response.PurchaseRequestResponse
// @Failure   404   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests/{id}/invoice/confirm [post]
func (h *InvoiceHandler) ConfirmInvoice(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.ConfirmInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.Confirm(c.Request.Context(), u, c.Param("id"), payload.PreviewID)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestView(view))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrExternalService):
		return pkg.NewDomainError("INVOICE_ANALYSIS_FAILED", "The invoice could not be analyzed", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("PREVIEW_STALE", "The request changed after the preview; analyze the invoice again", err, http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}
