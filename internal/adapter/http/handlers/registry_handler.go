package handlers

import (
	"net/http"

	request "hotel_procurement/internal/adapter/http/dto/request"
	"hotel_procurement/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves the catalog and supplier registry.
type RegistryHandler struct {
	usecase usecase.IRegistryUseCase
}

func NewRegistryHandler(uc usecase.IRegistryUseCase) *RegistryHandler {
	return &RegistryHandler{usecase: uc}
}

// ListCatalog godoc
// @Summary   List catalog items
// @Tags      registry
// @Produce   json
// @Success   200  {array}  entities.CatalogItem
// @Security  Bearer
// @Router    /catalog [get]
func (h *RegistryHandler) ListCatalog(c *gin.Context) {
	if _, ok := actor(c); !ok {
		return
	}
	items, err := h.usecase.ListCatalog(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListSuppliers godoc
// @Summary   List suppliers
// @Tags      registry
// @Produce   json
// @Param     branchId  query     string  false  "Branch"
// @Success   200       {array}   entities.Supplier
// @Failure   403       {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /suppliers [get]
func (h *RegistryHandler) ListSuppliers(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	suppliers, err := h.usecase.ListSuppliers(c.Request.Context(), u, c.Query("branchId"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *RegistryHandler) UpsertSupplier(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.UpsertSupplier(c.Request.Context(), u, payload.ToSupplier())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// SuggestSuppliers godoc
// @Summary   Rank known suppliers for a list of items
// @Tags      registry
// @Accept    json
// @Produce   json
// @Param     body  body      request.SuggestSuppliersRequest  true  "Items"
// @Success   200   {array}   entities.SupplierSuggestion
// @Failure   502   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /suppliers/suggestions [post]
func (h *RegistryHandler) SuggestSuppliers(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.SuggestSuppliersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	suggestions, err := h.usecase.SuggestSuppliers(c.Request.Context(), u, payload.BranchID, payload.ToItems())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
