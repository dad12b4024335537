package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/database"
	applogger "github.com/DularaDevinda/Happiness-Survey/backend/pkg/logger"
)

// app holds what every subcommand needs: settings, the logger and the one
// database pool.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func bootstrap() (*app, error) {
	// 1. configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// 3. database pool
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	if err := database.CloseDB(a.db); err != nil {
		a.logger.Warn("close database failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// migrate applies the embedded migrations, or GORM AutoMigrate on drivers
// without them.
func (a *app) migrate() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}

	err = database.RunMigrations(sqlDB, a.cfg.Database.Driver, a.logger)
	if errors.Is(err, database.ErrMigrationsUnsupported) {
		a.logger.Info("no embedded migrations for driver, using AutoMigrate",
			zap.String("driver", a.cfg.Database.Driver))
		return a.db.AutoMigrate(model.All()...)
	}
	return err
}

// repository probes the schema once and builds the repositories on it.
func (a *app) repository(ctx context.Context) (*repository.Repository, error) {
	schema := repository.NewIntrospector(a.db, a.logger)

	if a.cfg.Database.EnsureEmojiID {
		if err := repository.EnsureEmojiIDColumn(ctx, a.db, schema, a.logger); err != nil {
			// older schemas keep working on the character column alone
			a.logger.Warn("add EmojiID column failed", zap.Error(err))
		}
	}

	features := repository.Probe(ctx, schema, a.logger)
	return repository.NewRepository(a.db, features, a.logger), nil
}
