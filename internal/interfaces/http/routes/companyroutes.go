package routes

import (
	"github.com/gin-gonic/gin"

	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/interfaces/http/handlers"
	"deskflow/internal/interfaces/http/middleware"
)

type CompanyRouteConfig struct {
	CompanyHandler *handlers.CompanyHandler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       *permission.Enforcer
}

func SetupCompanyRoutes(engine *gin.Engine, config *CompanyRouteConfig) {
	companies := engine.Group("/api/v1/company")
	companies.Use(config.AuthMiddleware.RequireAuth())
	{
		companies.POST("",
			middleware.RequirePermission(config.Enforcer, "company", "create"),
			config.CompanyHandler.CreateCompany)
		companies.GET("",
			middleware.RequirePermission(config.Enforcer, "company", "read"),
			config.CompanyHandler.ListCompanies)

		// Register specific paths BEFORE parameterized paths.
		companies.GET("/:id",
			middleware.RequirePermission(config.Enforcer, "company", "read"),
			config.CompanyHandler.GetCompany)
		companies.PUT("/:id",
			middleware.RequirePermission(config.Enforcer, "company", "update"),
			config.CompanyHandler.UpdateCompany)
		companies.POST("/:id/documents",
			middleware.RequirePermission(config.Enforcer, "company", "update"),
			config.CompanyHandler.UploadDocument)
		companies.DELETE("/:id/documents",
			middleware.RequirePermission(config.Enforcer, "company", "update"),
			config.CompanyHandler.RemoveDocument)
		companies.DELETE("/:id",
			middleware.RequirePermission(config.Enforcer, "company", "delete"),
			config.CompanyHandler.DeleteCompany)
	}
}
