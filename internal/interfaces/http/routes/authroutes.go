package routes

import (
	"github.com/gin-gonic/gin"

	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/interfaces/http/handlers"
	"deskflow/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       *permission.Enforcer
	RateLimiter    *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/v1/auth")
	{
		auth.POST("/login", config.RateLimiter.Limit(), config.AuthHandler.Login)
		auth.POST("/refresh", config.RateLimiter.Limit(), config.AuthHandler.Refresh)
		auth.POST("/logout", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Logout)

		// Account creation is an admin operation; there is no self signup.
		auth.POST("/register",
			config.AuthMiddleware.RequireAuth(),
			middleware.RequirePermission(config.Enforcer, "user", "create"),
			config.AuthHandler.Register)
	}
}
