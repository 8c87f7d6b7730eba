package routes

import (
	"github.com/gin-gonic/gin"

	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/interfaces/http/handlers"
	"deskflow/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Enforcer            *permission.Enforcer
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/api/v1/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	notifications.Use(middleware.RequirePermission(config.Enforcer, "notification", "read"))
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)

		// Register specific paths BEFORE parameterized paths.
		notifications.GET("/unread-count", config.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllRead)
		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
	}
}
