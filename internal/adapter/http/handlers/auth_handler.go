package handlers

import (
	"errors"
	"net/http"

	request "hotel_procurement/internal/adapter/http/dto/request"
	response "hotel_procurement/internal/adapter/http/dto/response"
	"hotel_procurement/internal/usecase"
	"hotel_procurement/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary   Exchange credentials for a bearer token
// @Tags      auth
// @Accept    json
// @Produce   json
// @Param     body  body      request.LoginRequest  true  "Credentials"
// @Success   200   {object}  response.LoginResponse
// @Failure   401   {object}  pkg.HTTPError
// @Router    /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	token, user, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.LoginResponse{Token: token, User: response.FromUser(user)})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := actor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

func mapAuthError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password", err, http.StatusUnauthorized)
	}
	return mapDomainError(err)
}
