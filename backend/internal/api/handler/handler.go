package handler

import "github.com/DularaDevinda/Happiness-Survey/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	Department *DepartmentHandler
	Question   *QuestionHandler
	Answer     *AnswerHandler
	Report     *ReportHandler
	Export     *ExportHandler
	System     *SystemHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Department: NewDepartmentHandler(svc.Department),
		Question:   NewQuestionHandler(svc.Question),
		Answer:     NewAnswerHandler(svc.Answer),
		Report:     NewReportHandler(svc.Report),
		Export:     NewExportHandler(svc.Export),
		System:     NewSystemHandler(svc.System),
	}
}
