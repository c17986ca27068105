// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taskify/src/app/http/dto"
	"taskify/src/app/http/response"
	"taskify/src/core/domain"
	"taskify/src/core/usecase"
)

// TaskHandler handles the task CRUD endpoints.
type TaskHandler struct {
	taskService *usecase.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *usecase.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List returns all tasks, newest first.
// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, tasks)
}

// Create inserts a new task.
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title is required")
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Created(c, task)
}

// Update applies a partial update to a task.
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), id, domain.TaskUpdate{
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, task)
}

// Delete removes a task.
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Message(c, "Task deleted successfully")
}

// parseTaskID extracts and validates the :id path parameter.
// On failure it writes the 400 response and returns false.
func parseTaskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid task id")
		return 0, false
	}
	return id, true
}
