// Package response defines consistent HTTP response structures.
// All API responses should use these helpers for consistency.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskify/src/core/domain"
)

// ErrorBody is the error payload: {"error": "...", "details": "..."}.
// Details is only populated where exposing the cause is useful, such as
// the health endpoint.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message sends a 200 response with a confirmation message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// InternalError sends a 500 response without exposing internal details.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// This centralizes error handling and ensures consistent error responses.
func FromDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		NotFound(c, "Task not found")
	case domain.IsValidationError(err):
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Message != "" {
			BadRequest(c, domainErr.Message)
		} else {
			BadRequest(c, err.Error())
		}
	default:
		InternalError(c)
	}
}
