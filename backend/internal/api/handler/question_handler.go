package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// QuestionHandler serves the question endpoints.
type QuestionHandler struct {
	questionSvc service.QuestionService
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(questionSvc service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// ListQuestions
// GET /api/questions
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, questions)
}

// ListDepartmentQuestions
// GET /api/departments/:key/questions
func (h *QuestionHandler) ListDepartmentQuestions(c *gin.Context) {
	questions, err := h.questionSvc.ListByDepartment(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.OK(c, questions)
}

// CreateQuestion makes the new question the department's current one.
// POST /api/departments/:key/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13002, "Question text is required")
		return
	}

	result, err := h.questionSvc.Create(c.Request.Context(), c.Param("key"), &req)
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.Created(c, result)
}

// ActiveQuestion is what the kiosk shows.
// GET /api/departments/:key/active-question
func (h *QuestionHandler) ActiveQuestion(c *gin.Context) {
	result, err := h.questionSvc.Active(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *QuestionHandler) handleQuestionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 12001, "Department not found")
	case errors.Is(err, service.ErrQuestionTextRequired):
		response.BadRequest(c, 13002, "Question text is required")
	case errors.Is(err, service.ErrNoActiveQuestion):
		response.NotFound(c, 13003, "No active question found")
	case errors.Is(err, service.ErrQuestionNotFound):
		response.NotFound(c, 13001, "Question not found")
	default:
		response.InternalError(c, err)
	}
}
