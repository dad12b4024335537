package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the Excel download.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportReport
// GET /api/reports/export?departmentId=&startDate=&endDate=
func (h *ExportHandler) ExportReport(c *gin.Context) {
	var query dto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 10001, "Invalid query parameters")
		return
	}

	buf, filename, err := h.exportSvc.Export(c.Request.Context(), &query)
	if err != nil {
		handleReportError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
