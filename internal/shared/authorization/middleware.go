package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskflow/internal/shared/constants"
)

// RequireRoles rejects the request with 403 unless the authenticated user's
// role is in the allowed set.
func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	allowed := make(map[UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, ok := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !ok || !allowed[role] {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects the request with 403 unless the user is an admin.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(RoleAdmin)
}

// CanAccessResourceByOwnerID reports whether the caller may act on a
// resource owned by resourceOwnerID. Admins may act on anything.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
