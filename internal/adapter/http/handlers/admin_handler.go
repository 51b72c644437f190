package handlers

import (
	"net/http"

	request "hotel_procurement/internal/adapter/http/dto/request"
	response "hotel_procurement/internal/adapter/http/dto/response"
	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler manages users, roles and branches. Authorization is enforced
// by the use case.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// ListUsers godoc
// @Summary   List users
// @Tags      admin
// @Produce   json
// @Success   200  {array}   response.UserResponse
// @Failure   403  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	users, err := h.usecase.ListUsers(c.Request.Context(), u)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.CreateUser(c.Request.Context(), u, payload.ToInput())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(created))
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	updated, err := h.usecase.UpdateUser(c.Request.Context(), u, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(updated))
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteUser(c.Request.Context(), u, c.Param("id")); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListRoles(c *gin.Context) {
	if _, ok := actor(c); !ok {
		return
	}
	roles, err := h.usecase.ListRoles(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, roles)
}

// PutRole creates a role on POST and replaces the :name role on PUT.
func (h *AdminHandler) PutRole(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.RoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	def := payload.ToDefinition()
	if name := c.Param("name"); name != "" {
		def.Name = entities.Role(name)
	}
	def, err := h.usecase.PutRole(c.Request.Context(), u, def)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, def)
}

func (h *AdminHandler) DeleteRole(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteRole(c.Request.Context(), u, entities.Role(c.Param("name"))); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListBranches(c *gin.Context) {
	if _, ok := actor(c); !ok {
		return
	}
	branches, err := h.usecase.ListBranches(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, branches)
}

// PutBranch creates a branch on POST and updates the :id branch on PUT.
func (h *AdminHandler) PutBranch(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	var payload request.BranchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	b := payload.ToBranch()
	if id := c.Param("id"); id != "" {
		b.ID = id
	}
	b, err := h.usecase.PutBranch(c.Request.Context(), u, b)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *AdminHandler) DeleteBranch(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteBranch(c.Request.Context(), u, c.Param("id")); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
