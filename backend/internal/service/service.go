package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/jwt"
)

// Service aggregates every business service.
type Service struct {
	Auth       AuthService
	Department DepartmentService
	Question   QuestionService
	Answer     AnswerService
	Report     ReportService
	Export     ExportService
	System     SystemService
}

// NewService creates the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, logger),
		Department: NewDepartmentService(repo, logger),
		Question:   NewQuestionService(repo, logger),
		Answer:     NewAnswerService(repo, logger),
		Report:     NewReportService(repo, logger),
		Export:     NewExportService(repo, logger),
		System:     NewSystemService(repo, logger),
	}
}

// clock is overridden in tests.
type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
