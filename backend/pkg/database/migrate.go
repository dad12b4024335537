package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrMigrationsUnsupported is returned for drivers without embedded
// migrations; callers fall back to GORM AutoMigrate.
var ErrMigrationsUnsupported = errors.New("embedded migrations are only available for postgres")

// RunMigrations applies every pending embedded migration.
// The statements use CREATE ... IF NOT EXISTS so an existing legacy schema
// is left as it is.
func RunMigrations(db *sql.DB, driver string, logger *zap.Logger) error {
	if driver != config.DriverPostgres {
		return ErrMigrationsUnsupported
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("database migration is dirty", zap.Uint("version", version))
	} else {
		logger.Info("database migrations applied", zap.Uint("version", version))
	}

	return nil
}
