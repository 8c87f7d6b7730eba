package routes

import (
	"github.com/gin-gonic/gin"

	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/interfaces/http/handlers"
	"deskflow/internal/interfaces/http/middleware"
	"deskflow/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       *permission.Enforcer
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	// Legacy clients call the singular prefix; both mounts serve the same
	// handler set.
	registerTicketRoutes(engine.Group("/api/v1/ticket"), config)
	registerTicketRoutes(engine.Group("/api/v1/tickets"), config)
}

func registerTicketRoutes(tickets *gin.RouterGroup, config *TicketRouteConfig) {
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			middleware.RequirePermission(config.Enforcer, "ticket", "create"),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			middleware.RequirePermission(config.Enforcer, "ticket", "read"),
			config.TicketHandler.ListTickets)

		// Register specific paths BEFORE parameterized paths.
		tickets.GET("/:id",
			middleware.RequirePermission(config.Enforcer, "ticket", "read"),
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id/status",
			middleware.RequirePermission(config.Enforcer, "ticket", "update_status"),
			config.TicketHandler.ChangeStatus)
		tickets.PATCH("/:id/financial",
			middleware.RequirePermission(config.Enforcer, "ticket", "update_financial"),
			config.TicketHandler.UpdateFinancial)
		tickets.POST("/:id/comments",
			middleware.RequirePermission(config.Enforcer, "ticket", "comment"),
			config.TicketHandler.AddComment)
		tickets.POST("/:id/attachments",
			middleware.RequirePermission(config.Enforcer, "ticket", "comment"),
			config.TicketHandler.UploadAttachments)
		tickets.GET("/:id/attachments/download",
			middleware.RequirePermission(config.Enforcer, "ticket", "read"),
			config.TicketHandler.DownloadAttachment)
		tickets.POST("/:id/meetings",
			middleware.RequirePermission(config.Enforcer, "ticket", "schedule_meeting"),
			config.TicketHandler.AddMeeting)
		tickets.POST("/:id/interventions",
			middleware.RequirePermission(config.Enforcer, "ticket", "intervene"),
			config.TicketHandler.AddIntervention)
		tickets.POST("/:id/interventions/:interventionId/request-validation",
			middleware.RequirePermission(config.Enforcer, "ticket", "intervene"),
			config.TicketHandler.RequestValidation)
		tickets.POST("/:id/interventions/:interventionId/validate",
			middleware.RequirePermission(config.Enforcer, "ticket", "validate"),
			config.TicketHandler.ValidateIntervention)

		// Blockers carry no dedicated policy; they come from the delivery
		// side of the ticket, so a role check stands in for one.
		deliveryRoles := authorization.RequireRoles(
			authorization.RoleDeveloper,
			authorization.RoleGroupLeader,
			authorization.RoleProjectManager,
			authorization.RoleAdmin,
		)
		tickets.POST("/:id/blockers", deliveryRoles, config.TicketHandler.AddBlocker)
		tickets.POST("/:id/blockers/resolve", deliveryRoles, config.TicketHandler.ResolveBlocker)

		tickets.POST("/:id/assign",
			middleware.RequirePermission(config.Enforcer, "ticket", "assign"),
			config.TicketHandler.AssignRoles)

		// Sending a draft is reserved to its creator, enforced in the use case.
		tickets.POST("/:id/send", config.TicketHandler.SendTicket)

		tickets.POST("/:id/transfer",
			middleware.RequirePermission(config.Enforcer, "ticket", "transfer"),
			config.TicketHandler.TransferTicket)
	}
}
