package model

import "time"

// Privilege levels. A lower number means more privilege.
const (
	LevelSuperAdmin = 1
	LevelAdmin      = 2
)

// User is an administrator account, a row of Users.
type User struct {
	UserID            int        `gorm:"column:UserID;primaryKey;autoIncrement"               json:"UserID"`
	Username          string     `gorm:"column:Username;type:varchar(100);not null;uniqueIndex" json:"Username"`
	PasswordHash      string     `gorm:"column:PasswordHash;type:varchar(255);not null"       json:"-"`
	UserLevel         int        `gorm:"column:UserLevel;not null;default:2"                  json:"UserLevel"`
	IsActive          bool       `gorm:"column:IsActive;not null;default:true"                json:"IsActive"`
	CreatedAt         *time.Time `gorm:"column:CreatedAt;autoCreateTime:false"                json:"CreatedAt,omitempty"`
	LastLogin         *time.Time `gorm:"column:LastLogin"                                     json:"LastLogin,omitempty"`
	PasswordChangedAt *time.Time `gorm:"column:PasswordChangedAt"                             json:"PasswordChangedAt,omitempty"`
}

// TableName maps User to Users.
func (User) TableName() string { return "Users" }

// ValidLevel reports whether level is one of the known privilege levels.
func ValidLevel(level int) bool {
	return level == LevelSuperAdmin || level == LevelAdmin
}
