package routes

import (
	"github.com/gin-gonic/gin"

	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/interfaces/http/handlers"
	"deskflow/internal/interfaces/http/middleware"
)

type TaskRouteConfig struct {
	TaskHandler    *handlers.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       *permission.Enforcer
}

func SetupTaskRoutes(engine *gin.Engine, config *TaskRouteConfig) {
	tasks := engine.Group("/api/v1/task")
	tasks.Use(config.AuthMiddleware.RequireAuth())
	{
		tasks.POST("",
			middleware.RequirePermission(config.Enforcer, "task", "create"),
			config.TaskHandler.CreateTask)
		tasks.GET("",
			middleware.RequirePermission(config.Enforcer, "task", "read"),
			config.TaskHandler.ListTasks)

		// Register specific paths BEFORE parameterized paths.
		tasks.GET("/:id",
			middleware.RequirePermission(config.Enforcer, "task", "read"),
			config.TaskHandler.GetTask)
		tasks.PATCH("/:id/status",
			middleware.RequirePermission(config.Enforcer, "task", "update_status"),
			config.TaskHandler.ChangeStatus)
		tasks.POST("/:id/assign",
			middleware.RequirePermission(config.Enforcer, "task", "assign"),
			config.TaskHandler.AssignTask)
		tasks.POST("/:id/comments",
			middleware.RequirePermission(config.Enforcer, "task", "comment"),
			config.TaskHandler.AddComment)
		tasks.POST("/:id/blockers",
			middleware.RequirePermission(config.Enforcer, "task", "report_blocker"),
			config.TaskHandler.ReportBlocker)
		tasks.POST("/:id/blockers/resolve",
			middleware.RequirePermission(config.Enforcer, "task", "report_blocker"),
			config.TaskHandler.ResolveBlocker)
		tasks.POST("/:id/subtasks",
			middleware.RequirePermission(config.Enforcer, "task", "create"),
			config.TaskHandler.LinkSubtask)
		tasks.POST("/:id/attachments",
			middleware.RequirePermission(config.Enforcer, "task", "comment"),
			config.TaskHandler.UploadAttachments)
	}
}
