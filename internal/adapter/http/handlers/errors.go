package handlers

import (
	"errors"
	"net/http"

	"hotel_procurement/internal/adapter/http/middlewares"
	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest)
	errMissingActor   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
)

// mapDomainError translates the domain error taxonomy. External service
// failures are checked first because a malformed collaborator answer also
// wraps ErrValidation.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrExternalService):
		return pkg.NewDomainError("EXTERNAL_SERVICE_ERROR", "An external service failed", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrAuthorization):
		return pkg.NewDomainError("FORBIDDEN", err.Error(), err, http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// actor returns the authenticated user or writes 401.
func actor(c *gin.Context) (entities.User, bool) {
	u, ok := middlewares.Actor(c)
	if !ok {
		writeError(c, errMissingActor)
	}
	return u, ok
}
