package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/api/handler"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/api/middleware"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/api/router"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/jwt"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/redis"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	cfg, logger := a.cfg, a.logger
	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 1. schema
	if cfg.Database.AutoMigrate {
		if err := a.migrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	repo, err := a.repository(cmd.Context())
	if err != nil {
		return err
	}

	// 2. redis is optional; the rate limiter falls back to local buckets
	var limiter middleware.WindowLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting per process", zap.Error(err))
		} else {
			defer rdb.Close()
			limiter = rdb
		}
	}

	// 3. wiring: repository → service → handler → router
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repo, jwtMgr, logger)
	h := handler.NewHandler(svc)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.Setup(cfg, h, jwtMgr, repo.User, limiter, logger)

	// 4. serve with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
	return nil
}
