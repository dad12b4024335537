package dto

import "time"

// ── report DTOs ──

// EmojiBucket is one point of the scale in a report.
type EmojiBucket struct {
	EmojiID     int     `json:"EmojiID"`
	AnswerEmoji string  `json:"AnswerEmoji"`
	Label       string  `json:"Label"`
	Count       int64   `json:"Count"`
	Percentage  float64 `json:"Percentage"`
}

// DepartmentReport is one entry of GET /reports: the department's current
// question and its answer breakdown.
type DepartmentReport struct {
	DepartmentID   int           `json:"departmentId"`
	Department     string        `json:"department"`
	QuestionID     int           `json:"questionId"`
	Question       string        `json:"question"`
	TotalResponses int64         `json:"totalResponses"`
	Responses      []EmojiBucket `json:"responses"`
}

// HistoryQuery filters history and export. Dates are YYYY-MM-DD.
type HistoryQuery struct {
	DepartmentID string `form:"departmentId"`
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
}

// EmojiDatum is one history bucket.
type EmojiDatum struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Count int64  `json:"count"`
	ID    int    `json:"id"`
}

// HistoryRow is one question of GET /reports/history.
type HistoryRow struct {
	Department     string       `json:"department"`
	Question       string       `json:"question"`
	QuestionID     int          `json:"questionId"`
	DepartmentID   int          `json:"departmentId"`
	CreatedAt      *time.Time   `json:"createdAt"`
	TotalResponses int64        `json:"totalResponses"`
	EmojiData      []EmojiDatum `json:"emojiData"`
}
