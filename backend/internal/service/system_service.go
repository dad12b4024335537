package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// SystemService backs the operational endpoints.
type SystemService interface {
	Health(ctx context.Context) error
	Schema(ctx context.Context) (map[string][]repository.ColumnInfo, error)
}

type systemService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSystemService creates a SystemService.
func NewSystemService(repo *repository.Repository, logger *zap.Logger) SystemService {
	return &systemService{repo: repo, logger: logger}
}

func (s *systemService) Health(ctx context.Context) error {
	if err := s.repo.Schema.Ping(ctx); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *systemService) Schema(ctx context.Context) (map[string][]repository.ColumnInfo, error) {
	schema, err := s.repo.Schema.Describe(ctx)
	if err != nil {
		s.logger.Error("describe schema failed", zap.Error(err))
		return nil, err
	}
	return schema, nil
}
