package handlers

import (
	"net/http"

	request "hotel_procurement/internal/adapter/http/dto/request"
	response "hotel_procurement/internal/adapter/http/dto/response"
	"hotel_procurement/internal/usecase"
	"hotel_procurement/pkg"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	usecase usecase.IQueryUseCase
}

func NewQueryHandler(uc usecase.IQueryUseCase) *QueryHandler {
	return &QueryHandler{usecase: uc}
}

// ListRequests godoc
// @Summary   List visible purchase requests
// @Tags      requests
// @Produce   json
// @Param     search       query     string  false  "Free text"
// @Param     branchId     query     string  false  "Branch"
// @Param     department   query     string  false  "Department"
// @Param     status       query     string  false  "Status, repeated or comma separated"
// @Param     minTotal     query     string  false  "Minimum total"
// @Param     maxTotal     query     string  false  "Maximum total"
// @Param     requesterId  query     string  false  "Requester"
// @Success   200          {array}   response.PurchaseRequestResponse
// @Failure   400          {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests [get]
func (h *QueryHandler) ListRequests(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var q request.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	filter, field, err := q.ToFilter()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_FILTER", field+" must be a decimal amount", err, http.StatusBadRequest))
		return
	}
	views, err := h.usecase.List(c.Request.Context(), u, filter)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestViews(views))
}

// Analytics godoc
// @Summary   Dashboard figures for the caller
// @Tags      requests
// @Produce   json
// @Success   200  {object}  query.Analytics
// @Security  Bearer
// @Router    /analytics [get]
func (h *QueryHandler) Analytics(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	a, err := h.usecase.Analytics(c.Request.Context(), u)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}
