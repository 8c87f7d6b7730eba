package handlers

import (
	"github.com/gin-gonic/gin"

	"deskflow/internal/shared/constants"
)

// caller is the authenticated identity placed in the Gin context by the
// auth middleware.
type caller struct {
	ID   uint
	Role string
	Name string
}

// currentCaller extracts the authenticated caller. ok is false when the
// middleware did not run or stored an unexpected type.
func currentCaller(c *gin.Context) (caller, bool) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return caller{}, false
	}
	id, ok := rawID.(uint)
	if !ok {
		return caller{}, false
	}

	role, _ := c.Get(constants.ContextKeyUserRole)
	roleStr, _ := role.(string)

	name, _ := c.Get(constants.ContextKeyUserName)
	nameStr, _ := name.(string)

	return caller{ID: id, Role: roleStr, Name: nameStr}, true
}
