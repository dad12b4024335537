package model

import "strings"

// Department is a row of Departments.
// Slug and IsActive are optional columns; nil means absent or NULL.
type Department struct {
	DepartmentID int     `gorm:"column:DepartmentID;primaryKey;autoIncrement" json:"DepartmentID"`
	Name         string  `gorm:"column:Name;type:varchar(100);not null"       json:"Name"`
	Slug         *string `gorm:"column:Slug;type:varchar(50);uniqueIndex"     json:"Slug,omitempty"`
	IsActive     *bool   `gorm:"column:IsActive;not null;default:true"        json:"IsActive,omitempty"`
	Timestamps
}

// TableName maps Department to Departments.
func (Department) TableName() string { return "Departments" }

// DerivedSlug is the URL slug of a department on schemas without a Slug
// column: the lowercased name with spaces turned into hyphens.
func DerivedSlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// URLSlug returns the stored slug, or the derived one when none is stored.
func (d *Department) URLSlug() string {
	if d.Slug != nil && *d.Slug != "" {
		return *d.Slug
	}
	return DerivedSlug(d.Name)
}
