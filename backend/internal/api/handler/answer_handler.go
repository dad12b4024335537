package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// AnswerHandler serves the public kiosk submission.
type AnswerHandler struct {
	answerSvc service.AnswerService
}

// NewAnswerHandler creates an AnswerHandler.
func NewAnswerHandler(answerSvc service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc}
}

// SubmitAnswer
// POST /api/questions/:questionId/answers
func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	questionID, err := strconv.Atoi(c.Param("questionId"))
	if err != nil || questionID <= 0 {
		response.NotFound(c, 13001, "Question not found")
		return
	}

	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "Either emoji or emojiId is required")
		return
	}

	result, err := h.answerSvc.Submit(c.Request.Context(), questionID, &req)
	if err != nil {
		h.handleAnswerError(c, err)
		return
	}

	response.Created(c, result)
}

func (h *AnswerHandler) handleAnswerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmojiRequired):
		response.BadRequest(c, 14001, "Either emoji or emojiId is required")
	case errors.Is(err, service.ErrEmojiOutOfRange):
		response.BadRequest(c, 14002, "emojiId must be between 1 and 5")
	case errors.Is(err, service.ErrQuestionNotFound):
		response.NotFound(c, 13001, "Question not found")
	default:
		response.InternalError(c, err)
	}
}
