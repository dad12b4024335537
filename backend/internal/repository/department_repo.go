package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
)

// DepartmentRepository is the Departments data access interface.
type DepartmentRepository interface {
	// List returns departments ordered by name; only active ones when
	// activeOnly is set and the schema tracks activity.
	List(ctx context.Context, activeOnly bool) ([]model.Department, error)
	GetByID(ctx context.Context, id int, activeOnly bool) (*model.Department, error)
	// GetBySlug matches the Slug column, or the slug derived from the
	// name on schemas without one.
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Department, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, dept *model.Department) error
	// UpdateName returns gorm.ErrRecordNotFound when no row matched.
	UpdateName(ctx context.Context, id int, name string, at time.Time) error
	// Delete deactivates the row when the schema tracks activity and
	// removes it otherwise. Returns gorm.ErrRecordNotFound when no row
	// matched.
	Delete(ctx context.Context, id int, at time.Time) error
	CountQuestions(ctx context.Context, id int) (int64, error)
}

// departmentRepo is the GORM implementation of DepartmentRepository.
type departmentRepo struct {
	db       *gorm.DB
	features Features
}

// NewDepartmentRepo creates a DepartmentRepository.
func NewDepartmentRepo(db *gorm.DB, features Features) DepartmentRepository {
	return &departmentRepo{db: db, features: features}
}

func (r *departmentRepo) columns() []string {
	cols := []string{"DepartmentID", "Name"}
	if r.features.DepartmentSlug {
		cols = append(cols, "Slug")
	}
	if r.features.DepartmentIsActive {
		cols = append(cols, "IsActive")
	}
	if r.features.DepartmentCreatedAt {
		cols = append(cols, "CreatedAt")
	}
	if r.features.DepartmentUpdatedAt {
		cols = append(cols, "UpdatedAt")
	}
	return cols
}

func (r *departmentRepo) query(ctx context.Context, activeOnly bool) *gorm.DB {
	q := r.db.WithContext(ctx).Select(r.columns())
	if activeOnly && r.features.DepartmentIsActive {
		q = q.Where(eq("IsActive", true))
	}
	return q
}

func (r *departmentRepo) List(ctx context.Context, activeOnly bool) ([]model.Department, error) {
	var depts []model.Department
	err := r.query(ctx, activeOnly).
		Order(asc("Name")).
		Find(&depts).Error
	return depts, err
}

func (r *departmentRepo) GetByID(ctx context.Context, id int, activeOnly bool) (*model.Department, error) {
	var dept model.Department
	err := r.query(ctx, activeOnly).
		Where(eq("DepartmentID", id)).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Department, error) {
	q := r.query(ctx, activeOnly)
	if r.features.DepartmentSlug {
		q = q.Where(eq("Slug", slug))
	} else {
		q = q.Where(derivedSlugEq(slug))
	}

	var dept model.Department
	if err := q.First(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	if !r.features.DepartmentSlug {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Department{}).
		Where(eq("Slug", slug)).
		Count(&count).Error
	return count > 0, err
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	cols := []string{"Name"}
	if r.features.DepartmentSlug {
		cols = append(cols, "Slug")
	}
	if r.features.DepartmentIsActive {
		if dept.IsActive == nil {
			dept.IsActive = model.BoolPtr(true)
		}
		cols = append(cols, "IsActive")
	}
	if r.features.DepartmentCreatedAt {
		cols = append(cols, "CreatedAt")
	}
	if r.features.DepartmentUpdatedAt {
		cols = append(cols, "UpdatedAt")
	}
	return r.db.WithContext(ctx).Select(cols).Create(dept).Error
}

func (r *departmentRepo) UpdateName(ctx context.Context, id int, name string, at time.Time) error {
	values := map[string]interface{}{"Name": name}
	if r.features.DepartmentUpdatedAt {
		values["UpdatedAt"] = at
	}
	return r.update(ctx, id, values)
}

func (r *departmentRepo) Delete(ctx context.Context, id int, at time.Time) error {
	if r.features.DepartmentIsActive {
		values := map[string]interface{}{"IsActive": false}
		if r.features.DepartmentUpdatedAt {
			values["UpdatedAt"] = at
		}
		return r.update(ctx, id, values)
	}

	result := r.db.WithContext(ctx).
		Where(eq("DepartmentID", id)).
		Delete(&model.Department{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *departmentRepo) update(ctx context.Context, id int, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.Department{}).
		Where(eq("DepartmentID", id)).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *departmentRepo) CountQuestions(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Question{}).
		Where(eq("DepartmentID", id)).
		Count(&count).Error
	return count, err
}
