package middlewares

import (
	"net/http"
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"
	"hotel_procurement/pkg"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// AuthMiddleware resolves the bearer token to the current user record and
// stores it on the context for the handlers.
func AuthMiddleware(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(actorKey, user)
		c.Next()
	}
}

// Actor returns the user set by AuthMiddleware.
func Actor(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.User{}, false
	}
	u, ok := v.(entities.User)
	return u, ok
}

// SetActor is used by tests that mount handlers without the middleware.
func SetActor(u entities.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, u)
		c.Next()
	}
}
