package handlers

import (
	"context"
	"errors"
	"net/http"

	request "hotel_procurement/internal/adapter/http/dto/request"
	response "hotel_procurement/internal/adapter/http/dto/response"
	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"
	"hotel_procurement/pkg"

	"github.com/gin-gonic/gin"
)

// PurchaseRequestHandler exposes the request lifecycle.
type PurchaseRequestHandler struct {
	usecase usecase.IPurchaseRequestUseCase
}

func NewPurchaseRequestHandler(uc usecase.IPurchaseRequestUseCase) *PurchaseRequestHandler {
	return &PurchaseRequestHandler{usecase: uc}
}

// CreateRequest godoc
// @Summary      Create a purchase request
// @Description  Saves a draft, or submits it when "submit" is true.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      request.PurchaseRequestRequest  true  "Request"
// @Success      201   {object}  response.PurchaseRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests [post]
func (h *PurchaseRequestHandler) CreateRequest(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.PurchaseRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), u, payload.ToInput(), payload.Submit)
	if err != nil {
		writeError(c, mapPurchaseRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRequestView(view))
}

// GetRequest godoc
// @Summary   Get a purchase request
// @Tags      requests
// @Produce   json
// @Param     id   path      string  true  "Request ID"
// @Success   200  {object}  response.PurchaseRequestResponse
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests/{id} [get]
func (h *PurchaseRequestHandler) GetRequest(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.usecase.Get(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		writeError(c, mapPurchaseRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestView(view))
}

// EditRequest replaces items, branch and department of a draft.
func (h *PurchaseRequestHandler) EditRequest(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.PurchaseRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.Edit(c.Request.Context(), u, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPurchaseRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestView(view))
}

func (h *PurchaseRequestHandler) ResubmitRequest(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.usecase.Resubmit(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		writeError(c, mapPurchaseRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestView(view))
}

// ApproveRequest godoc
// @Summary   Approve the current stage
// @Tags      requests
// @Accept    json
// @Produce   json
// @Param     id    path      string                  true   "Request ID"
// @Param     body  body      request.CommentRequest  false  "Comment"
// @Success   200   {object}  response.PurchaseRequestResponse
// @Failure   403   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests/{id}/approve [post]
func (h *PurchaseRequestHandler) ApproveRequest(c *gin.Context) {
	h.withComment(c, h.usecase.Approve)
}

func (h *PurchaseRequestHandler) MarkPurchased(c *gin.Context) {
	h.withComment(c, h.usecase.MarkAsPurchased)
}

func (h *PurchaseRequestHandler) CompleteBankRound(c *gin.Context) {
	h.withComment(c, h.usecase.CompleteBankRound)
}

// RejectRequest godoc
// @Summary   Reject a pending request
// @Tags      requests
// @Accept    json
// @Produce   json
// @Param     id    path      string                 true  "Request ID"
// @Param     body  body      request.ReasonRequest  true  "Reason"
// @Success   200   {object}  response.PurchaseRequestResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests/{id}/reject [post]
func (h *PurchaseRequestHandler) RejectRequest(c *gin.Context) {
	h.withReason(c, h.usecase.Reject)
}

func (h *PurchaseRequestHandler) ReturnRequest(c *gin.Context) {
	h.withReason(c, h.usecase.ReturnForModification)
}

type transitionFunc func(ctx context.Context, actor entities.User, id, text string) (usecase.RequestView, error)

func (h *PurchaseRequestHandler) withComment(c *gin.Context, fn transitionFunc) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.CommentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
	}
	h.transition(c, fn, u, payload.Comment)
}

func (h *PurchaseRequestHandler) withReason(c *gin.Context, fn transitionFunc) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errReasonRequired)
		return
	}
	h.transition(c, fn, u, payload.Reason)
}

func (h *PurchaseRequestHandler) transition(c *gin.Context, fn transitionFunc, u entities.User, text string) {
	view, err := fn(c.Request.Context(), u, c.Param("id"), text)
	if err != nil {
		writeError(c, mapPurchaseRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestView(view))
}

// AddAttachment godoc
// @Summary   Attach a supporting document
// @Tags      requests
// @Accept    multipart/form-data
// @Produce   json
// @Param     id    path      string  true  "Request ID"
// @Param     file  formData  file    true  "Document"
// @Success   201   {object}  response.PurchaseRequestResponse
// @Failure   400   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests/{id}/attachments [post]
func (h *PurchaseRequestHandler) AddAttachment(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	file, appErr := readUpload(c)
	if appErr != nil {
		writeError(c, appErr)
		return
	}
	view, err := h.usecase.AddAttachment(c.Request.Context(), u, c.Param("id"), file)
	if err != nil {
		writeError(c, mapPurchaseRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRequestView(view))
}

func (h *PurchaseRequestHandler) RemoveAttachment(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.usecase.RemoveAttachment(c.Request.Context(), u, c.Param("id"), c.Param("attachment_id"))
	if err != nil {
		writeError(c, mapPurchaseRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestView(view))
}

var errReasonRequired = pkg.NewDomainErrorSimple("REASON_REQUIRED", "A reason is required", http.StatusBadRequest)

func mapPurchaseRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("REQUEST_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "The request was changed by someone else; reload and retry", err, http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}
