package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskify/src/app/http/response"
	"taskify/src/core/usecase"
)

const healthCheckTimeout = 3 * time.Second

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	healthService *usecase.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// HealthResponse is the response for the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health pings the database and reports service status.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.healthService.Check(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorBody{
			Error:   "Service unhealthy",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Message:   "Service is up and running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
