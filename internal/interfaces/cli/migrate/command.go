package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"deskflow/internal/infrastructure/config"
	"deskflow/internal/infrastructure/database"
	"deskflow/internal/infrastructure/migration"
	"deskflow/internal/shared/logger"
)

var (
	env     string
	steps   int
	version int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending scripts, roll back, or force a version.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newForceCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newForceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Force the migration version and clear the dirty flag",
		RunE:  runForce,
	}
	cmd.Flags().IntVarP(&version, "version", "v", 0, "Version to force")
	return cmd
}

func setup() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(env, log)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations applied", "strategy", manager.StrategyName())
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	log, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := scriptStrategy(log)
	if err != nil {
		return err
	}
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

func runForce(cmd *cobra.Command, args []string) error {
	log, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := scriptStrategy(log)
	if err != nil {
		return err
	}
	if err := strategy.Force(database.Get(), version); err != nil {
		return fmt.Errorf("force failed: %w", err)
	}
	return nil
}

// scriptStrategy rebuilds the golang-migrate strategy; down and force only
// make sense for versioned SQL scripts.
func scriptStrategy(log logger.Interface) (*migration.GolangMigrateStrategy, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath, log).(*migration.GolangMigrateStrategy)
	if !ok {
		return nil, fmt.Errorf("unexpected strategy type")
	}
	return strategy, nil
}
