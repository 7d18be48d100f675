package delivery

import (
	"strings"

	authdomain "dda-backend/internal/auth/domain"
	"dda-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthMiddleware resolves a bearer session token to its user and attaches it
// to the request context. Missing, unknown or expired tokens leave the
// requester unset; handlers decide whether that is a 401.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.Next()
			return
		}

		user, err := authUsecase.ValidateSessionToken(c.Request.Context(), parts[1])
		if err != nil {
			respondError(c, err)
			return
		}
		if user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// UserFromContext returns the authenticated user, or nil for anonymous
// requests.
func UserFromContext(c *gin.Context) *authdomain.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}
