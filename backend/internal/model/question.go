package model

// Question is a row of SurveyQuestions.
type Question struct {
	QuestionID   int    `gorm:"column:QuestionID;primaryKey;autoIncrement" json:"QuestionID"`
	DepartmentID int    `gorm:"column:DepartmentID;not null;index"         json:"DepartmentID"`
	QuestionText string `gorm:"column:QuestionText;type:text;not null"     json:"QuestionText"`
	IsActive     *bool  `gorm:"column:IsActive;not null;default:true"      json:"IsActive,omitempty"`
	Timestamps

	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"-"`
}

// TableName maps Question to SurveyQuestions.
func (Question) TableName() string { return "SurveyQuestions" }
