// Package dto contains Data Transfer Objects for HTTP requests.
//
// DTOs are separate from domain entities to control what the API accepts
// and to carry gin binding tags for request validation.
package dto

// CreateTaskRequest is the payload for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// UpdateTaskRequest is the payload for PUT /api/tasks/:id.
// Both fields are optional; supplying neither is rejected.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	IsCompleted *bool   `json:"isCompleted"`
}
