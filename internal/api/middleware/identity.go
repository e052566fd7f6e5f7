package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/repository"
	"github.com/linskybing/civictrack/pkg/response"
	"github.com/linskybing/civictrack/pkg/utils"
)

// Auth checks token holders against the user store.
type Auth struct {
	users repository.UserRepo
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{users: repos.User}
}

// CurrentUser reloads the token's user on every request, so a role change or
// deactivation applies before the token expires. The stored role replaces
// the one in the claims. Must run after JWTAuthMiddleware.
func (a *Auth) CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		usr, err := a.users.GetUserByID(claims.UserID)
		if err != nil {
			if repository.IsNotFound(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "User no longer exists"})
				return
			}
			slog.Error("failed to load token user", "user_id", claims.UserID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
			return
		}
		if !usr.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Account is disabled"})
			return
		}

		claims.Role = string(usr.Role)
		c.Next()
	}
}
