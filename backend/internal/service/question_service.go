package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// ── question errors ──

var (
	ErrQuestionNotFound     = errors.New("question not found")
	ErrQuestionTextRequired = errors.New("question text is required")
	ErrNoActiveQuestion     = errors.New("no active question found")
)

// QuestionService manages survey questions.
type QuestionService interface {
	ListAll(ctx context.Context) ([]dto.QuestionResponse, error)
	ListByDepartment(ctx context.Context, key string) ([]dto.QuestionResponse, error)
	// Create adds the department's new current question.
	Create(ctx context.Context, key string, req *dto.QuestionRequest) (*dto.CreateQuestionResponse, error)
	Active(ctx context.Context, key string) (*dto.ActiveQuestionResponse, error)
}

type questionService struct {
	repo   *repository.Repository
	logger *zap.Logger
	clock  clock
}

// NewQuestionService creates a QuestionService.
func NewQuestionService(repo *repository.Repository, logger *zap.Logger) QuestionService {
	return &questionService{repo: repo, logger: logger}
}

func (s *questionService) ListAll(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.Question.List(ctx, repository.QuestionFilter{})
	if err != nil {
		s.logger.Error("list questions failed", zap.Error(err))
		return nil, err
	}
	return toQuestionResponses(questions), nil
}

func (s *questionService) ListByDepartment(ctx context.Context, key string) ([]dto.QuestionResponse, error) {
	dept, err := resolveDepartment(ctx, s.repo, s.logger, key, true)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.Question.ListByDepartment(ctx, dept.DepartmentID)
	if err != nil {
		s.logger.Error("list department questions failed", zap.Int("department_id", dept.DepartmentID), zap.Error(err))
		return nil, err
	}
	return toQuestionResponses(questions), nil
}

func (s *questionService) Create(ctx context.Context, key string, req *dto.QuestionRequest) (*dto.CreateQuestionResponse, error) {
	text := strings.TrimSpace(req.QuestionText)
	if text == "" {
		return nil, ErrQuestionTextRequired
	}

	dept, err := resolveDepartment(ctx, s.repo, s.logger, key, false)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	q := &model.Question{DepartmentID: dept.DepartmentID, QuestionText: text}
	q.CreatedAt = model.TimePtr(now)
	q.UpdatedAt = model.TimePtr(now)

	if err := s.repo.Question.CreateActive(ctx, q); err != nil {
		s.logger.Error("create question failed", zap.Int("department_id", dept.DepartmentID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("question created",
		zap.Int("department_id", dept.DepartmentID),
		zap.Int("question_id", q.QuestionID),
	)
	return &dto.CreateQuestionResponse{Success: true, QuestionID: q.QuestionID}, nil
}

func (s *questionService) Active(ctx context.Context, key string) (*dto.ActiveQuestionResponse, error) {
	dept, err := resolveDepartment(ctx, s.repo, s.logger, key, true)
	if err != nil {
		return nil, err
	}

	q, err := s.repo.Question.GetActive(ctx, dept.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveQuestion
		}
		s.logger.Error("get active question failed", zap.Int("department_id", dept.DepartmentID), zap.Error(err))
		return nil, err
	}
	return &dto.ActiveQuestionResponse{QuestionID: q.QuestionID, QuestionText: q.QuestionText}, nil
}

func toQuestionResponses(questions []model.Question) []dto.QuestionResponse {
	result := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		result = append(result, dto.QuestionResponse{
			QuestionID:   q.QuestionID,
			DepartmentID: q.DepartmentID,
			QuestionText: q.QuestionText,
			IsActive:     q.IsActive,
			CreatedAt:    q.CreatedAt,
		})
	}
	return result
}
