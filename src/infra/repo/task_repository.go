package repo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"taskify/src/core/domain"
	"taskify/src/core/ports"
	"taskify/src/infra/db"
)

// taskColumns is the canonical column list every task statement returns.
const taskColumns = `id, title, description, is_completed, created_at, updated_at`

// TaskRepository implements ports.TaskRepository over the query executor.
type TaskRepository struct {
	exec *db.Executor
	log  *slog.Logger
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository constructs a repository backed by Postgres.
func NewTaskRepository(exec *db.Executor, log *slog.Logger) *TaskRepository {
	return &TaskRepository{
		exec: exec,
		log:  log,
	}
}

func (r *TaskRepository) Health(ctx context.Context) error {
	return r.exec.Ping(ctx)
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks ORDER BY id DESC`

	rows, err := r.exec.Query(ctx, q, nil)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		t, err := rowToTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, title string, description *string) (*domain.Task, error) {
	const q = `
		INSERT INTO tasks (title, description)
		VALUES (@title, @description)
		RETURNING ` + taskColumns

	desc := db.Null()
	if description != nil {
		desc = db.Text(*description)
	}

	rows, err := r.exec.Query(ctx, q, db.Params{
		"title":       db.Text(title),
		"description": desc,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert returned no row")
	}
	return rowToTask(rows[0])
}

// Update applies the non-nil fields of upd. Absent fields are bound as
// null and COALESCE keeps the stored value; updated_at is stamped on every
// update.
func (r *TaskRepository) Update(ctx context.Context, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	const q = `
		UPDATE tasks
		SET title        = COALESCE(@title::varchar, title),
		    is_completed = COALESCE(@is_completed::boolean, is_completed),
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + taskColumns

	title := db.Null()
	if upd.Title != nil {
		title = db.Text(*upd.Title)
	}
	completed := db.Null()
	if upd.IsCompleted != nil {
		completed = db.Bool(*upd.IsCompleted)
	}

	rows, err := r.exec.Query(ctx, q, db.Params{
		"id":           db.Int(id),
		"title":        title,
		"is_completed": completed,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewNotFoundError("task")
	}
	return rowToTask(rows[0])
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM tasks WHERE id = @id`

	affected, err := r.exec.Exec(ctx, q, db.Params{"id": db.Int(id)})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("task")
	}
	return nil
}

// rowToTask maps an executor row onto the domain entity.
func rowToTask(row db.Row) (*domain.Task, error) {
	var t domain.Task
	var ok bool

	if t.ID, ok = row["id"].(int64); !ok {
		return nil, fmt.Errorf("unexpected type %T for column id", row["id"])
	}
	if t.Title, ok = row["title"].(string); !ok {
		return nil, fmt.Errorf("unexpected type %T for column title", row["title"])
	}
	if v := row["description"]; v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected type %T for column description", v)
		}
		t.Description = &s
	}
	if t.IsCompleted, ok = row["is_completed"].(bool); !ok {
		return nil, fmt.Errorf("unexpected type %T for column is_completed", row["is_completed"])
	}
	if t.CreatedAt, ok = row["created_at"].(time.Time); !ok {
		return nil, fmt.Errorf("unexpected type %T for column created_at", row["created_at"])
	}
	if v := row["updated_at"]; v != nil {
		ts, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("unexpected type %T for column updated_at", v)
		}
		t.UpdatedAt = &ts
	}

	return &t, nil
}
