package model

import "time"

// Timestamps are the optional audit columns shared by Departments and
// SurveyQuestions. Both are nullable because older schemas lack them, and
// GORM's automatic time tracking is disabled: repositories only write the
// columns the schema probe found.
type Timestamps struct {
	CreatedAt *time.Time `gorm:"column:CreatedAt;autoCreateTime:false" json:"CreatedAt,omitempty"`
	UpdatedAt *time.Time `gorm:"column:UpdatedAt;autoUpdateTime:false" json:"UpdatedAt,omitempty"`
}

// All lists every model for GORM AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Department{},
		&Question{},
		&Answer{},
	}
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time { return &t }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }
