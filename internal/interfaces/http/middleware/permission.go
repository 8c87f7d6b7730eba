package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/shared/constants"
	"deskflow/internal/shared/utils"
)

// RequirePermission checks the caller's role against the casbin policy for
// the given resource and action. Must run after RequireAuth.
func RequirePermission(enforcer *permission.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
