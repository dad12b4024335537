package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every failed request.
// The kiosk and dashboard frontends read the "error" field.
type ErrorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// SuccessBody is the acknowledgement returned by mutating endpoints.
type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ── success ──

// OK 200 with data as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 with data as the body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Success 200 {"success": true}.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// ── errors ──

// Error writes a failure body.
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, ErrorBody{
		Error: message,
		Code:  code,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, code int, message string) {
	Error(c, http.StatusForbidden, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// InternalError 500. The underlying message is surfaced to the client.
func InternalError(c *gin.Context, err error) {
	message := "internal server error"
	if err != nil {
		message = err.Error()
		_ = c.Error(err)
	}
	Error(c, http.StatusInternalServerError, 50000, message)
}
