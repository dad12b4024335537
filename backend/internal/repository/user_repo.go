package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
)

// UserRepository is the Users data access interface.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int) (*model.User, error)
	// GetActiveByUsername only returns accounts with IsActive set.
	GetActiveByUsername(ctx context.Context, username string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	TouchLastLogin(ctx context.Context, id int, at time.Time) error
	// UpdatePassword stores hash and, when the schema has the column,
	// the change time.
	UpdatePassword(ctx context.Context, id int, hash string, at time.Time) error
}

// userRepo is the GORM implementation of UserRepository.
type userRepo struct {
	db       *gorm.DB
	features Features
}

// NewUserRepo creates a UserRepository.
func NewUserRepo(db *gorm.DB, features Features) UserRepository {
	return &userRepo{db: db, features: features}
}

func (r *userRepo) columns() []string {
	cols := []string{"UserID", "Username", "PasswordHash", "UserLevel", "IsActive"}
	if r.features.UserCreatedAt {
		cols = append(cols, "CreatedAt")
	}
	if r.features.UserLastLogin {
		cols = append(cols, "LastLogin")
	}
	if r.features.UserPasswordChangedAt {
		cols = append(cols, "PasswordChangedAt")
	}
	return cols
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	cols := []string{"Username", "PasswordHash", "UserLevel", "IsActive"}
	if r.features.UserCreatedAt {
		cols = append(cols, "CreatedAt")
	}
	if r.features.UserPasswordChangedAt && user.PasswordChangedAt != nil {
		cols = append(cols, "PasswordChangedAt")
	}
	return r.db.WithContext(ctx).Select(cols).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select(r.columns()).
		Where(eq("UserID", id)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetActiveByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select(r.columns()).
		Where(eq("Username", username)).
		Where(eq("IsActive", true)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where(eq("Username", username)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepo) TouchLastLogin(ctx context.Context, id int, at time.Time) error {
	if !r.features.UserLastLogin {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where(eq("UserID", id)).
		Updates(map[string]interface{}{"LastLogin": at}).Error
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int, hash string, at time.Time) error {
	values := map[string]interface{}{"PasswordHash": hash}
	if r.features.UserPasswordChangedAt {
		values["PasswordChangedAt"] = at
	}
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where(eq("UserID", id)).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
