// Package ports defines the interfaces between the core and the outer layers.
package ports

import (
	"context"

	"taskify/src/core/domain"
)

// TaskRepository is the data-access contract for tasks.
// The Postgres implementation lives in src/infra/repo.
type TaskRepository interface {
	// List returns all tasks ordered by id descending.
	List(ctx context.Context) ([]domain.Task, error)

	// Create inserts a task and returns the stored row.
	// Description may be nil.
	Create(ctx context.Context, title string, description *string) (*domain.Task, error)

	// Update applies the non-nil fields of upd and stamps updated_at.
	// Returns a not found error when no row matches id.
	Update(ctx context.Context, id int64, upd domain.TaskUpdate) (*domain.Task, error)

	// Delete removes a task. Returns a not found error when no row matches id.
	Delete(ctx context.Context, id int64) error

	// Health checks if the database is reachable.
	Health(ctx context.Context) error
}
