package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"deskflow/internal/shared/constants"
)

func performWithRole(t *testing.T, handler gin.HandlerFunc, role string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/protected",
		func(c *gin.Context) {
			if role != "" {
				c.Set(constants.ContextKeyUserRole, role)
			}
			c.Next()
		},
		handler,
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireRoles(t *testing.T) {
	guard := RequireRoles(RoleDeveloper, RoleGroupLeader)

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"allowed role", "developer", http.StatusOK},
		{"second allowed role", "groupLeader", http.StatusOK},
		{"role outside the set", "client", http.StatusForbidden},
		{"unknown role", "wizard", http.StatusForbidden},
		{"missing role", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithRole(t, guard, tt.role)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, performWithRole(t, RequireAdmin(), "admin").Code)
	assert.Equal(t, http.StatusForbidden, performWithRole(t, RequireAdmin(), "projectManager").Code)
}

func TestCanAccessResourceByOwnerID(t *testing.T) {
	assert.True(t, CanAccessResourceByOwnerID(5, RoleClient, 5), "owner")
	assert.False(t, CanAccessResourceByOwnerID(5, RoleClient, 6), "someone else's resource")
	assert.True(t, CanAccessResourceByOwnerID(5, RoleAdmin, 6), "admins always")
}
