package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskify/src/infra/db"
)

func TestRowToTask(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	t.Run("fresh task has nil description and nil updated_at", func(t *testing.T) {
		task, err := rowToTask(db.Row{
			"id":           int64(1),
			"title":        "Buy milk",
			"description":  nil,
			"is_completed": false,
			"created_at":   created,
			"updated_at":   nil,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Nil(t, task.Description)
		assert.False(t, task.IsCompleted)
		assert.Equal(t, created, task.CreatedAt)
		assert.Nil(t, task.UpdatedAt)
	})

	t.Run("populated optional columns", func(t *testing.T) {
		task, err := rowToTask(db.Row{
			"id":           int64(2),
			"title":        "Write report",
			"description":  "quarterly numbers",
			"is_completed": true,
			"created_at":   created,
			"updated_at":   updated,
		})
		require.NoError(t, err)

		require.NotNil(t, task.Description)
		assert.Equal(t, "quarterly numbers", *task.Description)
		assert.True(t, task.IsCompleted)
		require.NotNil(t, task.UpdatedAt)
		assert.Equal(t, updated, *task.UpdatedAt)
	})

	t.Run("type mismatch is an error", func(t *testing.T) {
		_, err := rowToTask(db.Row{
			"id":           "not-an-int",
			"title":        "Buy milk",
			"is_completed": false,
			"created_at":   created,
		})
		assert.ErrorContains(t, err, "column id")
	})
}
