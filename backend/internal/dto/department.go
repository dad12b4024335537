package dto

// ── department DTOs ──

// DepartmentRequest creates or renames a department.
type DepartmentRequest struct {
	Name string `json:"name"`
}

// DepartmentResponse is one entry of GET /departments.
type DepartmentResponse struct {
	DepartmentID int    `json:"DepartmentID"`
	Name         string `json:"Name"`
	URLSlug      string `json:"URLSlug"`
}

// DepartmentDetailResponse GET /departments/slug/:slug
type DepartmentDetailResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"isActive"`
}

// CreateDepartmentResponse POST /departments
type CreateDepartmentResponse struct {
	Success bool   `json:"success"`
	URLSlug string `json:"urlSlug"`
}
