package dto

import "time"

// ── question DTOs ──

// QuestionRequest POST /departments/:key/questions
type QuestionRequest struct {
	QuestionText string `json:"questionText"`
}

// QuestionResponse is one question row. Optional columns are omitted when
// the schema lacks them.
type QuestionResponse struct {
	QuestionID   int        `json:"QuestionID"`
	DepartmentID int        `json:"DepartmentID"`
	QuestionText string     `json:"QuestionText"`
	IsActive     *bool      `json:"IsActive,omitempty"`
	CreatedAt    *time.Time `json:"CreatedAt,omitempty"`
}

// CreateQuestionResponse POST /departments/:key/questions
type CreateQuestionResponse struct {
	Success    bool `json:"success"`
	QuestionID int  `json:"questionId"`
}

// ActiveQuestionResponse GET /departments/:key/active-question
type ActiveQuestionResponse struct {
	QuestionID   int    `json:"QuestionID"`
	QuestionText string `json:"QuestionText"`
}
