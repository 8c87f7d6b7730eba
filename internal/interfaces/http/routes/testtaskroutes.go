package routes

import (
	"github.com/gin-gonic/gin"

	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/interfaces/http/handlers"
	"deskflow/internal/interfaces/http/middleware"
)

type TestTaskRouteConfig struct {
	TestTaskHandler *handlers.TestTaskHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Enforcer        *permission.Enforcer
}

func SetupTestTaskRoutes(engine *gin.Engine, config *TestTaskRouteConfig) {
	testTasks := engine.Group("/api/v1/testing")
	testTasks.Use(config.AuthMiddleware.RequireAuth())
	{
		testTasks.POST("",
			middleware.RequirePermission(config.Enforcer, "test_task", "create"),
			config.TestTaskHandler.CreateTestTask)
		testTasks.GET("",
			middleware.RequirePermission(config.Enforcer, "test_task", "read"),
			config.TestTaskHandler.ListTestTasks)

		// Register specific paths BEFORE parameterized paths.
		testTasks.GET("/:id",
			middleware.RequirePermission(config.Enforcer, "test_task", "read"),
			config.TestTaskHandler.GetTestTask)
		testTasks.PATCH("/:id/status",
			middleware.RequirePermission(config.Enforcer, "test_task", "update_status"),
			config.TestTaskHandler.ChangeStatus)
		testTasks.POST("/:id/assign",
			middleware.RequirePermission(config.Enforcer, "test_task", "assign"),
			config.TestTaskHandler.AssignTestTask)
		testTasks.POST("/:id/comments",
			middleware.RequirePermission(config.Enforcer, "test_task", "comment"),
			config.TestTaskHandler.AddComment)
		testTasks.POST("/:id/blockers",
			middleware.RequirePermission(config.Enforcer, "test_task", "report_blocker"),
			config.TestTaskHandler.ReportBlocker)
		testTasks.POST("/:id/blockers/resolve",
			middleware.RequirePermission(config.Enforcer, "test_task", "report_blocker"),
			config.TestTaskHandler.ResolveBlocker)
		testTasks.POST("/:id/attachments",
			middleware.RequirePermission(config.Enforcer, "test_task", "comment"),
			config.TestTaskHandler.UploadAttachments)
	}
}
