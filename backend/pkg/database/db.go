package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
)

// NewDB opens the connection pool for the configured driver.
// The returned *gorm.DB is the only pool of the process; callers close it
// through CloseDB on shutdown.
func NewDB(cfg *config.DatabaseConfig, logLevel string, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	// the pool is pinged below, with a timeout and a close on failure
	gormCfg := &gorm.Config{
		Logger:               NewGormLogger(logger, logLevel),
		DisableAutomaticPing: true,
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 5
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := verifyPool(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database connected",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("dbname", cfg.Name),
		zap.Int("max_open_conns", maxOpen),
	)

	return db, nil
}

// pool is the part of *sql.DB that verifyPool needs.
type pool interface {
	PingContext(ctx context.Context) error
	Close() error
}

// verifyPool pings p and closes it when the database is unreachable.
func verifyPool(ctx context.Context, p pool) error {
	if err := p.PingContext(ctx); err != nil {
		_ = p.Close()
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Dialector maps db.driver to its GORM dialector.
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	dsn := cfg.DSN()
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverSQLServer:
		return sqlserver.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Ping checks that the pool can still reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CloseDB releases every pooled connection.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewGormLogger routes GORM's SQL log through zap at a level derived from
// the application log level.
func NewGormLogger(logger *zap.Logger, appLevel string) gormlogger.Interface {
	level := gormlogger.Warn
	switch appLevel {
	case "debug":
		level = gormlogger.Info
	case "error", "dpanic", "panic", "fatal":
		level = gormlogger.Error
	}

	return gormlogger.New(
		zap.NewStdLog(logger.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
