package http

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notificationApp "deskflow/internal/application/notification"
	"deskflow/internal/infrastructure/auth"
	"deskflow/internal/infrastructure/cache"
	"deskflow/internal/infrastructure/config"
	"deskflow/internal/infrastructure/database"
	"deskflow/internal/infrastructure/email"
	"deskflow/internal/infrastructure/migration"
	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/infrastructure/realtime"
	"deskflow/internal/infrastructure/repository"
	"deskflow/internal/infrastructure/storage"
	"deskflow/internal/interfaces/http/middleware"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/services/markdown"
)

// Container wires every infrastructure component, repository, use case and
// handler together and owns their lifecycle.
type Container struct {
	cfg *config.Config
	log logger.Interface

	db    *gorm.DB
	redis *redis.Client

	enforcer *permission.Enforcer
	store    *storage.LocalStore
	hub      *realtime.Hub

	jwtSvc   *auth.JWTService
	hasher   *auth.BcryptPasswordHasher
	emailSvc *email.SMTPEmailService
	markdown markdown.Service
	notifier *notificationApp.Notifier

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

type repositories struct {
	users         *repository.UserRepository
	tickets       *repository.TicketRepository
	tasks         *repository.TaskRepository
	testTasks     *repository.TestTaskRepository
	companies     *repository.CompanyRepository
	notifications *repository.NotificationRepository
}

func NewContainer(cfg *config.Config, env string, log logger.Interface) (*Container, error) {
	c := &Container{cfg: cfg, log: log}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	c.db = database.Get()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redis = redisClient

	migrator := migration.NewManager(env, log)
	if err := migrator.Migrate(c.db, migration.AutoMigrateModels()...); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}
	if err := permission.SeedPolicies(enforcer, log); err != nil {
		return nil, fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer

	store, err := storage.NewLocalStore(cfg.Storage.UploadRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}
	c.store = store

	c.hub = realtime.NewHub(log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.emailSvc = email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Email.BaseURL,
	})
	c.markdown = markdown.NewService()

	c.repos = &repositories{
		users:         repository.NewUserRepository(c.db),
		tickets:       repository.NewTicketRepository(c.db),
		tasks:         repository.NewTaskRepository(c.db),
		testTasks:     repository.NewTestTaskRepository(c.db),
		companies:     repository.NewCompanyRepository(c.db),
		notifications: repository.NewNotificationRepository(c.db),
	}

	c.buildUseCases()
	c.buildHandlers()

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.rateLimiter = middleware.NewRateLimiter(
		c.redis,
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)

	return c, nil
}

// Shutdown releases held connections. Safe to call on a partially built
// container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				c.log.Warnw("failed to close database connection", "error", err)
			}
		}
	}
}
