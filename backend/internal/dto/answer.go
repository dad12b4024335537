package dto

// ── answer DTOs ──

// SubmitAnswerRequest POST /questions/:questionId/answers.
// At least one of the two fields is required.
type SubmitAnswerRequest struct {
	Emoji   *string `json:"emoji"`
	EmojiID *int    `json:"emojiId"`
}

// SubmitAnswerResponse echoes the owning department.
type SubmitAnswerResponse struct {
	Success      bool `json:"success"`
	DepartmentID int  `json:"departmentId"`
}
