package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

func intPtr(i int) *int { return &i }

// setupTestAnswerService seeds one department with one question.
func setupTestAnswerService(t *testing.T, features repository.Features) (AnswerService, *mockRepos, int) {
	t.Helper()
	mocks := newMockRepos(features)
	dsvc := NewDepartmentService(mocks.repo, zap.NewNop())
	qsvc := NewQuestionService(mocks.repo, zap.NewNop())

	slug := mustCreateDepartment(t, dsvc, "Finance")
	q, err := qsvc.Create(context.Background(), slug, &dto.QuestionRequest{QuestionText: "How was your day?"})
	if err != nil {
		t.Fatal(err)
	}
	return NewAnswerService(mocks.repo, zap.NewNop()), mocks, q.QuestionID
}

func TestAnswerService_Submit_EmojiIDOnly(t *testing.T) {
	svc, mocks, qID := setupTestAnswerService(t, repository.FullFeatures())

	resp, err := svc.Submit(context.Background(), qID, &dto.SubmitAnswerRequest{EmojiID: intPtr(3)})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !resp.Success || resp.DepartmentID != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}

	stored := mocks.answers.answers[0]
	if *stored.EmojiID != 3 || *stored.AnswerEmoji != "😐" {
		t.Errorf("expected Okay stored as id and char, got %v %q", *stored.EmojiID, *stored.AnswerEmoji)
	}
	if stored.DepartmentID == nil || *stored.DepartmentID != 1 {
		t.Error("expected denormalized department id")
	}
	if stored.AnsweredAt == nil {
		t.Error("expected answered time")
	}
}

func TestAnswerService_Submit_EmojiOnlyDerivesID(t *testing.T) {
	svc, mocks, qID := setupTestAnswerService(t, repository.FullFeatures())

	char := "😡"
	if _, err := svc.Submit(context.Background(), qID, &dto.SubmitAnswerRequest{Emoji: &char}); err != nil {
		t.Fatal(err)
	}
	if got := mocks.answers.answers[0].EmojiID; got == nil || *got != 5 {
		t.Errorf("expected derived id 5, got %v", got)
	}
}

func TestAnswerService_Submit_UnknownCharacterKeepsNoID(t *testing.T) {
	svc, mocks, qID := setupTestAnswerService(t, repository.FullFeatures())

	char := "🤔"
	if _, err := svc.Submit(context.Background(), qID, &dto.SubmitAnswerRequest{Emoji: &char}); err != nil {
		t.Fatal(err)
	}
	if got := mocks.answers.answers[0]; got.EmojiID != nil || *got.AnswerEmoji != "🤔" {
		t.Errorf("unexpected stored answer: %+v", got)
	}
}

func TestAnswerService_Submit_Validation(t *testing.T) {
	svc, _, qID := setupTestAnswerService(t, repository.FullFeatures())
	empty := ""

	cases := []struct {
		name string
		req  dto.SubmitAnswerRequest
		want error
	}{
		{"neither", dto.SubmitAnswerRequest{}, ErrEmojiRequired},
		{"empty emoji and zero id", dto.SubmitAnswerRequest{Emoji: &empty, EmojiID: intPtr(0)}, ErrEmojiRequired},
		{"id too high", dto.SubmitAnswerRequest{EmojiID: intPtr(6)}, ErrEmojiOutOfRange},
		{"negative id", dto.SubmitAnswerRequest{EmojiID: intPtr(-1)}, ErrEmojiOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), qID, &tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAnswerService_Submit_UnknownQuestion(t *testing.T) {
	svc, _, _ := setupTestAnswerService(t, repository.FullFeatures())

	_, err := svc.Submit(context.Background(), 999, &dto.SubmitAnswerRequest{EmojiID: intPtr(1)})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestAnswerService_Submit_LegacySchemaStoresCharacter(t *testing.T) {
	svc, mocks, qID := setupTestAnswerService(t, repository.Features{AnswerEmoji: true})

	if _, err := svc.Submit(context.Background(), qID, &dto.SubmitAnswerRequest{EmojiID: intPtr(2)}); err != nil {
		t.Fatal(err)
	}
	stored := mocks.answers.answers[0]
	if stored.EmojiID != nil {
		t.Error("EmojiID column does not exist on this schema")
	}
	if *stored.AnswerEmoji != "😊" {
		t.Errorf("expected Good character, got %q", *stored.AnswerEmoji)
	}
}

func TestAnswerService_Submit_StoreError(t *testing.T) {
	svc, mocks, qID := setupTestAnswerService(t, repository.FullFeatures())
	mocks.answers.failErr = errors.New("disk full")

	_, err := svc.Submit(context.Background(), qID, &dto.SubmitAnswerRequest{EmojiID: intPtr(1)})
	if err == nil || err.Error() != "disk full" {
		t.Errorf("expected the store error, got %v", err)
	}
}
