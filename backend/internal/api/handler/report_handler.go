package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// ReportHandler serves the dashboard reports.
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Reports
// GET /api/reports
func (h *ReportHandler) Reports(c *gin.Context) {
	reports, err := h.reportSvc.Reports(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, reports)
}

// History
// GET /api/reports/history?departmentId=&startDate=&endDate=
func (h *ReportHandler) History(c *gin.Context) {
	var query dto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 10001, "Invalid query parameters")
		return
	}

	rows, err := h.reportSvc.History(c.Request.Context(), &query)
	if err != nil {
		handleReportError(c, err)
		return
	}

	response.OK(c, rows)
}

// EmojiStats
// GET /api/emoji-stats
func (h *ReportHandler) EmojiStats(c *gin.Context) {
	stats, err := h.reportSvc.EmojiStats(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, stats)
}

// handleReportError is shared with the export handler, which takes the
// same filters.
func handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 15001, "Dates must use the YYYY-MM-DD format")
	case errors.Is(err, service.ErrInvalidDepartmentID):
		response.BadRequest(c, 15002, "departmentId must be a positive integer")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 12001, "Department not found")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, 15003, "Failed to generate Excel file")
	default:
		response.InternalError(c, err)
	}
}
