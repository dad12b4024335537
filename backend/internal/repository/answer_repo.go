package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
)

// EmojiCount is one grouped answer count. EmojiID and AnswerEmoji are nil
// when the column is absent or the stored value is NULL.
type EmojiCount struct {
	QuestionID  int     `gorm:"column:QuestionID"`
	EmojiID     *int    `gorm:"column:EmojiID"`
	AnswerEmoji *string `gorm:"column:AnswerEmoji"`
	Count       int64   `gorm:"column:cnt"`
}

// AnswerRepository is the SurveyAnswers data access interface.
type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	// CountByQuestion groups answers of the given questions by stored
	// emoji, keyed by question id.
	CountByQuestion(ctx context.Context, questionIDs []int) (map[int][]EmojiCount, error)
	// CountAll groups every answer by stored emoji.
	CountAll(ctx context.Context) ([]EmojiCount, error)
	// ListByQuestions returns raw answers newest first.
	ListByQuestions(ctx context.Context, questionIDs []int) ([]model.Answer, error)
}

// answerRepo is the GORM implementation of AnswerRepository.
type answerRepo struct {
	db       *gorm.DB
	features Features
}

// NewAnswerRepo creates an AnswerRepository.
func NewAnswerRepo(db *gorm.DB, features Features) AnswerRepository {
	return &answerRepo{db: db, features: features}
}

func (r *answerRepo) Create(ctx context.Context, answer *model.Answer) error {
	cols := []string{"QuestionID"}
	if r.features.AnswerDepartmentID {
		cols = append(cols, "DepartmentID")
	}
	if r.features.AnswerEmoji {
		cols = append(cols, "AnswerEmoji")
	}
	if r.features.AnswerEmojiID {
		cols = append(cols, "EmojiID")
	}
	if r.features.AnswerAnsweredAt {
		cols = append(cols, "AnsweredAt")
	}
	if r.features.AnswerCreatedAt {
		cols = append(cols, "CreatedAt")
	}
	return r.db.WithContext(ctx).Select(cols).Create(answer).Error
}

// emojiGroupColumns are the stored emoji columns the schema has.
func (r *answerRepo) emojiGroupColumns() []string {
	var cols []string
	if r.features.AnswerEmojiID {
		cols = append(cols, "EmojiID")
	}
	if r.features.AnswerEmoji {
		cols = append(cols, "AnswerEmoji")
	}
	return cols
}

func (r *answerRepo) grouped(ctx context.Context, groupCols []string) *gorm.DB {
	selects := append(append([]string{}, groupCols...), "COUNT(*) AS cnt")
	q := r.db.WithContext(ctx).
		Model(&model.Answer{}).
		Select(selects)
	for _, c := range groupCols {
		q = q.Group(c)
	}
	return q
}

func (r *answerRepo) CountByQuestion(ctx context.Context, questionIDs []int) (map[int][]EmojiCount, error) {
	out := make(map[int][]EmojiCount, len(questionIDs))
	if len(questionIDs) == 0 {
		return out, nil
	}

	groupCols := append([]string{"QuestionID"}, r.emojiGroupColumns()...)
	var rows []EmojiCount
	err := r.grouped(ctx, groupCols).
		Where(in("QuestionID", intsToAny(questionIDs)...)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.QuestionID] = append(out[row.QuestionID], row)
	}
	return out, nil
}

func (r *answerRepo) CountAll(ctx context.Context) ([]EmojiCount, error) {
	var rows []EmojiCount
	err := r.grouped(ctx, r.emojiGroupColumns()).Scan(&rows).Error
	return rows, err
}

func (r *answerRepo) ListByQuestions(ctx context.Context, questionIDs []int) ([]model.Answer, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}

	cols := []string{"AnswerID", "QuestionID"}
	cols = append(cols, r.emojiGroupColumns()...)
	if r.features.AnswerAnsweredAt {
		cols = append(cols, "AnsweredAt")
	}
	if r.features.AnswerCreatedAt {
		cols = append(cols, "CreatedAt")
	}
	order := desc("AnswerID")
	if r.features.AnswerAnsweredAt {
		order = desc("AnsweredAt")
	}

	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Select(cols).
		Where(in("QuestionID", intsToAny(questionIDs)...)).
		Order(order).
		Find(&answers).Error
	return answers, err
}
