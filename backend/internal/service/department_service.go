package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// ── department errors ──

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentNameRequired = errors.New("department name is required")
	ErrDepartmentHasQuestions = errors.New("cannot delete department with existing questions")
)

// DepartmentService manages departments.
type DepartmentService interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.DepartmentDetailResponse, error)
	Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.CreateDepartmentResponse, error)
	// Update renames the department; its slug never changes.
	Update(ctx context.Context, key string, req *dto.DepartmentRequest) error
	Delete(ctx context.Context, key string) error
}

type departmentService struct {
	repo    *repository.Repository
	logger  *zap.Logger
	clock   clock
	newSlug func() (string, error)
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger, newSlug: generateSlug}
}

// ────────────────────── List ──────────────────────

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx, true)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, dto.DepartmentResponse{
			DepartmentID: depts[i].DepartmentID,
			Name:         depts[i].Name,
			URLSlug:      depts[i].URLSlug(),
		})
	}
	return result, nil
}

// ────────────────────── GetBySlug ──────────────────────

func (s *departmentService) GetBySlug(ctx context.Context, slug string) (*dto.DepartmentDetailResponse, error) {
	dept, err := s.repo.Department.GetBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("get department failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	return &dto.DepartmentDetailResponse{
		ID:       dept.DepartmentID,
		Name:     dept.Name,
		Slug:     dept.URLSlug(),
		IsActive: dept.IsActive == nil || *dept.IsActive,
	}, nil
}

// ────────────────────── Create ──────────────────────

func (s *departmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.CreateDepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrDepartmentNameRequired
	}

	slug, err := s.uniqueSlug(ctx)
	if err != nil {
		s.logger.Error("generate slug failed", zap.Error(err))
		return nil, err
	}

	now := s.clock.now()
	dept := &model.Department{Name: name, Slug: &slug}
	dept.CreatedAt = model.TimePtr(now)
	dept.UpdatedAt = model.TimePtr(now)

	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("create department failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	// without a Slug column the generated one is never stored
	if !s.repo.Features.DepartmentSlug {
		slug = model.DerivedSlug(name)
	}

	s.logger.Info("department created",
		zap.Int("department_id", dept.DepartmentID),
		zap.String("slug", slug),
	)
	return &dto.CreateDepartmentResponse{Success: true, URLSlug: slug}, nil
}

// uniqueSlug generates slugs until one is free. A failing existence check
// counts as a collision.
func (s *departmentService) uniqueSlug(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= slugAttempts; attempt++ {
		slug, err := s.newSlug()
		if err != nil {
			return "", err
		}
		if !s.repo.Features.DepartmentSlug {
			return slug, nil
		}

		exists, err := s.repo.Department.SlugExists(ctx, slug)
		if err != nil {
			s.logger.Warn("slug check failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		if !exists {
			return slug, nil
		}
	}

	slug := fallbackSlug(s.clock.now())
	s.logger.Warn("slug attempts exhausted, using fallback", zap.String("slug", slug))
	return slug, nil
}

// ────────────────────── Update ──────────────────────

func (s *departmentService) Update(ctx context.Context, key string, req *dto.DepartmentRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrDepartmentNameRequired
	}

	dept, err := s.resolveForWrite(ctx, key)
	if err != nil {
		return err
	}

	if err := s.repo.Department.UpdateName(ctx, dept.DepartmentID, name, s.clock.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		s.logger.Error("update department failed", zap.Int("department_id", dept.DepartmentID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *departmentService) Delete(ctx context.Context, key string) error {
	dept, err := s.resolveForWrite(ctx, key)
	if err != nil {
		return err
	}

	// 1. questions must be removed first
	count, err := s.repo.Department.CountQuestions(ctx, dept.DepartmentID)
	if err != nil {
		s.logger.Error("count questions failed", zap.Int("department_id", dept.DepartmentID), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrDepartmentHasQuestions
	}

	// 2. soft or hard delete, depending on the schema
	if err := s.repo.Department.Delete(ctx, dept.DepartmentID, s.clock.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		s.logger.Error("delete department failed", zap.Int("department_id", dept.DepartmentID), zap.Error(err))
		return err
	}

	s.logger.Info("department deleted",
		zap.Int("department_id", dept.DepartmentID),
		zap.Bool("soft", s.repo.Features.DepartmentIsActive),
	)
	return nil
}

// resolveForWrite finds the department an admin route addresses.
// Numeric keys are ids and never fall back to slug matching, so a legacy
// department named "1" cannot shadow id 1.
func (s *departmentService) resolveForWrite(ctx context.Context, key string) (*model.Department, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return resolveDepartment(ctx, s.repo, s.logger, key, false)
	}
	if id <= 0 {
		return nil, ErrDepartmentNotFound
	}

	dept, err := s.repo.Department.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("resolve department failed", zap.Int("department_id", id), zap.Error(err))
		return nil, err
	}
	return dept, nil
}

// resolveDepartment finds a department by route key: slug first, then
// numeric id.
func resolveDepartment(ctx context.Context, repo *repository.Repository, logger *zap.Logger, key string, activeOnly bool) (*model.Department, error) {
	dept, err := repo.Department.GetBySlug(ctx, key, activeOnly)
	if err == nil {
		return dept, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("resolve department failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	id, convErr := strconv.Atoi(key)
	if convErr != nil || id <= 0 {
		return nil, ErrDepartmentNotFound
	}

	dept, err = repo.Department.GetByID(ctx, id, activeOnly)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		logger.Error("resolve department failed", zap.Int("department_id", id), zap.Error(err))
		return nil, err
	}
	return dept, nil
}
