package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
)

// QuestionFilter narrows question listings for history and export.
// Date bounds only apply when the schema records question creation time.
type QuestionFilter struct {
	DepartmentID *int
	From         *time.Time
	To           *time.Time
}

// QuestionRepository is the SurveyQuestions data access interface.
type QuestionRepository interface {
	GetByID(ctx context.Context, id int) (*model.Question, error)
	// List returns questions newest first, with their department loaded.
	List(ctx context.Context, filter QuestionFilter) ([]model.Question, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]model.Question, error)
	// GetActive returns the department's current question. Without an
	// activity column the newest question is current.
	GetActive(ctx context.Context, departmentID int) (*model.Question, error)
	// CreateActive inserts q and, when the schema tracks activity,
	// deactivates the department's other questions in the same
	// transaction.
	CreateActive(ctx context.Context, q *model.Question) error
}

// questionRepo is the GORM implementation of QuestionRepository.
type questionRepo struct {
	db       *gorm.DB
	features Features
}

// NewQuestionRepo creates a QuestionRepository.
func NewQuestionRepo(db *gorm.DB, features Features) QuestionRepository {
	return &questionRepo{db: db, features: features}
}

func (r *questionRepo) columns() []string {
	cols := []string{"QuestionID", "DepartmentID", "QuestionText"}
	if r.features.QuestionIsActive {
		cols = append(cols, "IsActive")
	}
	if r.features.QuestionCreatedAt {
		cols = append(cols, "CreatedAt")
	}
	if r.features.QuestionUpdatedAt {
		cols = append(cols, "UpdatedAt")
	}
	return cols
}

func (r *questionRepo) newestFirst() clause.OrderByColumn {
	if r.features.QuestionCreatedAt {
		return desc("CreatedAt")
	}
	return desc("QuestionID")
}

// preloadDepartment loads the owning department with only the columns the
// schema has.
func (r *questionRepo) preloadDepartment(q *gorm.DB) *gorm.DB {
	cols := []string{"DepartmentID", "Name"}
	if r.features.DepartmentSlug {
		cols = append(cols, "Slug")
	}
	return q.Preload("Department", func(db *gorm.DB) *gorm.DB {
		return db.Select(cols)
	})
}

func (r *questionRepo) GetByID(ctx context.Context, id int) (*model.Question, error) {
	var q model.Question
	err := r.db.WithContext(ctx).
		Select(r.columns()).
		Where(eq("QuestionID", id)).
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepo) List(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	q := r.preloadDepartment(r.db.WithContext(ctx).Select(r.columns()))

	if filter.DepartmentID != nil {
		q = q.Where(eq("DepartmentID", *filter.DepartmentID))
	}
	if r.features.QuestionCreatedAt {
		if filter.From != nil {
			q = q.Where(clause.Gte{Column: col("CreatedAt"), Value: *filter.From})
		}
		if filter.To != nil {
			q = q.Where(clause.Lte{Column: col("CreatedAt"), Value: *filter.To})
		}
	}

	var questions []model.Question
	err := q.Order(r.newestFirst()).Find(&questions).Error
	return questions, err
}

func (r *questionRepo) ListByDepartment(ctx context.Context, departmentID int) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Select(r.columns()).
		Where(eq("DepartmentID", departmentID)).
		Order(r.newestFirst()).
		Find(&questions).Error
	return questions, err
}

func (r *questionRepo) GetActive(ctx context.Context, departmentID int) (*model.Question, error) {
	q := r.db.WithContext(ctx).
		Select(r.columns()).
		Where(eq("DepartmentID", departmentID))
	if r.features.QuestionIsActive {
		q = q.Where(eq("IsActive", true))
	}

	var question model.Question
	if err := q.Order(r.newestFirst()).Take(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) CreateActive(ctx context.Context, q *model.Question) error {
	cols := []string{"DepartmentID", "QuestionText"}
	if r.features.QuestionIsActive {
		q.IsActive = model.BoolPtr(true)
		cols = append(cols, "IsActive")
	}
	if r.features.QuestionCreatedAt {
		cols = append(cols, "CreatedAt")
	}
	if r.features.QuestionUpdatedAt {
		cols = append(cols, "UpdatedAt")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. retire the department's current question
		if r.features.QuestionIsActive {
			values := map[string]interface{}{"IsActive": false}
			if r.features.QuestionUpdatedAt && q.UpdatedAt != nil {
				values["UpdatedAt"] = *q.UpdatedAt
			}
			err := tx.Model(&model.Question{}).
				Where(eq("DepartmentID", q.DepartmentID)).
				Where(eq("IsActive", true)).
				Updates(values).Error
			if err != nil {
				return err
			}
		}

		// 2. insert the new one
		return tx.Select(cols).Create(q).Error
	})
}
