package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError represents a custom application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Message: message,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

// HandleError sends the uniform error envelope for an error
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.Code, gin.H{"status": "error", "message": appErr.Message})
		return
	}

	// Persistence and other internal detail never reaches the client
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": ErrInternal})
}

// HandleSuccess sends the uniform success envelope with an optional payload
func HandleSuccess(c *gin.Context, payload gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
