package usecase

import (
	"context"
	"log/slog"

	"taskify/src/core/domain"
	"taskify/src/core/ports"
)

// TaskService orchestrates task CRUD operations.
// Validation happens here, before any statement reaches the executor.
type TaskService struct {
	repo ports.TaskRepository
	log  *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo ports.TaskRepository, log *slog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

// List returns every task, newest first.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}

// Create validates the fields and inserts a new task.
// New tasks start incomplete with no update timestamp.
func (s *TaskService) Create(ctx context.Context, title string, description *string) (*domain.Task, error) {
	trimmed, err := domain.NormalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateDescription(description); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, trimmed, description)
}

// Update applies a partial update. At least one field must be supplied;
// a supplied title is validated the same way as on create.
func (s *TaskService) Update(ctx context.Context, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}
	if upd.Empty() {
		return nil, domain.NewValidationError("body", "at least one of title or isCompleted is required")
	}
	if upd.Title != nil {
		trimmed, err := domain.NormalizeTitle(*upd.Title)
		if err != nil {
			return nil, err
		}
		upd.Title = &trimmed
	}
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a task by id.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	return s.repo.Delete(ctx, id)
}
