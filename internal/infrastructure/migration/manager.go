package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"deskflow/internal/shared/constants"
	"deskflow/internal/shared/logger"
)

// Manager picks a migration strategy for the environment and runs it.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment string, log logger.Interface) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGolangMigrateStrategy(scriptsPath, log)
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy(log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}

	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	m.logger.Info("database migration completed")
	return nil
}

func (m *Manager) StrategyName() string {
	return m.strategy.GetName()
}
