package routes

import (
	"github.com/gin-gonic/gin"

	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/interfaces/http/handlers"
	"deskflow/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       *permission.Enforcer
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/api/v1/user")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths.
		users.GET("/me", config.UserHandler.GetProfile)
		users.PUT("/me", config.UserHandler.UpdateProfile)
		users.PUT("/me/password", config.UserHandler.ChangePassword)

		users.GET("",
			middleware.RequirePermission(config.Enforcer, "user", "read"),
			config.UserHandler.ListUsers)
		users.PATCH("/:id/suspend",
			middleware.RequirePermission(config.Enforcer, "user", "suspend"),
			config.UserHandler.SuspendUser)
		users.DELETE("/:id",
			middleware.RequirePermission(config.Enforcer, "user", "delete"),
			config.UserHandler.DeleteUser)
	}
}
