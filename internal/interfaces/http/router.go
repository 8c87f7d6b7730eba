package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskflow/internal/interfaces/http/middleware"
	"deskflow/internal/interfaces/http/routes"
)

// Router owns the Gin engine and mounts every route group on it.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) *Router {
	if container.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{
		engine:    gin.New(),
		container: container,
	}
}

// SetupRoutes configures global middleware and all route groups.
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.Logger(c.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Realtime event stream. Auth happens over the query token during the
	// upgrade handshake because browsers cannot set headers on WebSockets.
	r.engine.GET("/ws", c.authMiddleware.RequireAuthFromQuery(), c.hub.ServeWS)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		AuthMiddleware: c.authMiddleware,
		Enforcer:       c.enforcer,
		RateLimiter:    c.rateLimiter,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.user,
		AuthMiddleware: c.authMiddleware,
		Enforcer:       c.enforcer,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticket,
		AuthMiddleware: c.authMiddleware,
		Enforcer:       c.enforcer,
	})
	routes.SetupTaskRoutes(r.engine, &routes.TaskRouteConfig{
		TaskHandler:    c.hdlrs.task,
		AuthMiddleware: c.authMiddleware,
		Enforcer:       c.enforcer,
	})
	routes.SetupTestTaskRoutes(r.engine, &routes.TestTaskRouteConfig{
		TestTaskHandler: c.hdlrs.testTask,
		AuthMiddleware:  c.authMiddleware,
		Enforcer:        c.enforcer,
	})
	routes.SetupCompanyRoutes(r.engine, &routes.CompanyRouteConfig{
		CompanyHandler: c.hdlrs.company,
		AuthMiddleware: c.authMiddleware,
		Enforcer:       c.enforcer,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notification,
		AuthMiddleware:      c.authMiddleware,
		Enforcer:            c.enforcer,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
