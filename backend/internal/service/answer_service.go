package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// ── answer errors ──

var (
	ErrEmojiRequired   = errors.New("either emoji or emojiId is required")
	ErrEmojiOutOfRange = errors.New("emojiId must be between 1 and 5")
)

// AnswerService records anonymous kiosk answers.
type AnswerService interface {
	Submit(ctx context.Context, questionID int, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
}

type answerService struct {
	repo   *repository.Repository
	logger *zap.Logger
	clock  clock
}

// NewAnswerService creates an AnswerService.
func NewAnswerService(repo *repository.Repository, logger *zap.Logger) AnswerService {
	return &answerService{repo: repo, logger: logger}
}

func (s *answerService) Submit(ctx context.Context, questionID int, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	// 1. validate the emoji; 0 counts as absent
	var char string
	if req.Emoji != nil {
		char = *req.Emoji
	}
	var emojiID int
	if req.EmojiID != nil {
		emojiID = *req.EmojiID
	}
	if char == "" && emojiID == 0 {
		return nil, ErrEmojiRequired
	}
	if emojiID != 0 && !model.ValidEmojiID(emojiID) {
		return nil, ErrEmojiOutOfRange
	}

	// 2. the question owns the department
	q, err := s.repo.Question.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		s.logger.Error("get question failed", zap.Int("question_id", questionID), zap.Error(err))
		return nil, err
	}

	// 3. fill whichever representation is missing
	if emojiID == 0 {
		emojiID = model.EmojiIDFromChar(char)
	}
	if char == "" {
		e, _ := model.EmojiByID(emojiID)
		char = e.Char
	}

	now := s.clock.now()
	answer := &model.Answer{
		QuestionID:   q.QuestionID,
		DepartmentID: &q.DepartmentID,
		AnswerEmoji:  &char,
		AnsweredAt:   model.TimePtr(now),
		CreatedAt:    model.TimePtr(now),
	}
	if emojiID != 0 {
		answer.EmojiID = &emojiID
	}

	if err := s.repo.Answer.Create(ctx, answer); err != nil {
		s.logger.Error("store answer failed", zap.Int("question_id", questionID), zap.Error(err))
		return nil, err
	}

	return &dto.SubmitAnswerResponse{Success: true, DepartmentID: q.DepartmentID}, nil
}
