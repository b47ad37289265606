package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutormatch/internal/domain"
	"tutormatch/internal/pkg/response"
)

// RequireRole ensures the authenticated user carries the given role.
// Must run after JWTAuth.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		if role.(string) != string(required) {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// TutorOnly gates slot-management endpoints.
func TutorOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleTutor)
}
