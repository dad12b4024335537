package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// DepartmentHandler serves the department endpoints.
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// ListDepartments
// GET /api/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, depts)
}

// GetDepartmentBySlug
// GET /api/departments/slug/:slug
func (h *DepartmentHandler) GetDepartmentBySlug(c *gin.Context) {
	dept, err := h.deptSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dept)
}

// CreateDepartment
// POST /api/departments
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12003, "Department name is required")
		return
	}

	result, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateDepartment renames; :key is a slug or a numeric id.
// PUT /api/departments/:key
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12003, "Department name is required")
		return
	}

	if err := h.deptSvc.Update(c.Request.Context(), c.Param("key"), &req); err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, response.SuccessBody{Success: true, Message: "Department updated successfully"})
}

// DeleteDepartment
// DELETE /api/departments/:key
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	if err := h.deptSvc.Delete(c.Request.Context(), c.Param("key")); err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, response.SuccessBody{Success: true, Message: "Department deleted successfully"})
}

func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 12001, "Department not found")
	case errors.Is(err, service.ErrDepartmentHasQuestions):
		response.BadRequest(c, 12002, "Cannot delete department with existing questions")
	case errors.Is(err, service.ErrDepartmentNameRequired):
		response.BadRequest(c, 12003, "Department name is required")
	default:
		response.InternalError(c, err)
	}
}
