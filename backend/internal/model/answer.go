package model

import "time"

// Answer is a row of SurveyAnswers. No respondent identity is stored.
type Answer struct {
	AnswerID     int        `gorm:"column:AnswerID;primaryKey;autoIncrement"         json:"AnswerID"`
	QuestionID   int        `gorm:"column:QuestionID;not null;index"                 json:"QuestionID"`
	DepartmentID *int       `gorm:"column:DepartmentID"                              json:"DepartmentID,omitempty"`
	AnswerEmoji  *string    `gorm:"column:AnswerEmoji;type:varchar(16)"              json:"AnswerEmoji,omitempty"`
	EmojiID      *int       `gorm:"column:EmojiID"                                   json:"EmojiID,omitempty"`
	AnsweredAt   *time.Time `gorm:"column:AnsweredAt"                                json:"AnsweredAt,omitempty"`
	CreatedAt    *time.Time `gorm:"column:CreatedAt;autoCreateTime:false"            json:"CreatedAt,omitempty"`

	Question *Question `gorm:"foreignKey:QuestionID;references:QuestionID" json:"-"`
}

// TableName maps Answer to SurveyAnswers.
func (Answer) TableName() string { return "SurveyAnswers" }
