package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// SystemHandler serves the operational endpoints.
type SystemHandler struct {
	systemSvc service.SystemService
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(systemSvc service.SystemService) *SystemHandler {
	return &SystemHandler{systemSvc: systemSvc}
}

// Health
// GET /api/health
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.systemSvc.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	response.OK(c, dto.HealthResponse{Status: "healthy", Database: "connected"})
}

// Schema dumps the column catalog.
// GET /api/schema
func (h *SystemHandler) Schema(c *gin.Context) {
	schema, err := h.systemSvc.Schema(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, schema)
}
