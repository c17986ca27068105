package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskify/src/core/domain"
	"taskify/src/core/ports"
	"taskify/src/infra/config"
)

// memRepo is an in-memory ports.TaskRepository for driving the router
// without a database. IDs are never reused after deletion.
type memRepo struct {
	mu        sync.Mutex
	nextID    int64
	tasks     map[int64]domain.Task
	healthErr error
}

var _ ports.TaskRepository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{tasks: make(map[int64]domain.Task)}
}

func (m *memRepo) List(_ context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.tasks))
	for id := range m.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.tasks[id])
	}
	return out, nil
}

func (m *memRepo) Create(_ context.Context, title string, description *string) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	t := domain.Task{
		ID:          m.nextID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
	m.tasks[t.ID] = t
	return &t, nil
}

func (m *memRepo) Update(_ context.Context, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, domain.NewNotFoundError("task")
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.IsCompleted != nil {
		t.IsCompleted = *upd.IsCompleted
	}
	now := time.Now()
	if !now.After(t.CreatedAt) {
		now = t.CreatedAt.Add(time.Millisecond)
	}
	t.UpdatedAt = &now
	m.tasks[id] = t
	return &t, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return domain.NewNotFoundError("task")
	}
	delete(m.tasks, id)
	return nil
}

func (m *memRepo) Health(_ context.Context) error {
	return m.healthErr
}

func newTestServer(t *testing.T) (*Server, *memRepo) {
	t.Helper()

	repo := newMemRepo()
	cfg := &config.Config{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, log, repo), repo
}

func perform(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestTaskLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	// Create
	rec := perform(t, srv, http.MethodPost, "/api/tasks", map[string]any{"title": "Buy milk"})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody(t, rec)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Buy milk", created["title"])
	assert.Equal(t, false, created["isCompleted"])
	assert.NotEmpty(t, created["createdAt"])
	assert.Nil(t, created["updatedAt"])

	// Complete it
	rec = perform(t, srv, http.MethodPut, "/api/tasks/1", map[string]any{"isCompleted": true})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeBody(t, rec)
	assert.Equal(t, "Buy milk", updated["title"])
	assert.Equal(t, true, updated["isCompleted"])
	assert.NotNil(t, updated["updatedAt"])

	// Delete it
	rec = perform(t, srv, http.MethodDelete, "/api/tasks/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Task deleted successfully", decodeBody(t, rec)["message"])

	// Nothing left
	rec = perform(t, srv, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateRejectsShortTitles(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing title", body: map[string]any{}},
		{name: "empty title", body: map[string]any{"title": ""}},
		{name: "whitespace only", body: map[string]any{"title": "   "}},
		{name: "two characters", body: map[string]any{"title": "ab"}},
		{name: "two characters after trim", body: map[string]any{"title": " ab "}},
		{name: "two multibyte characters", body: map[string]any{"title": "日本"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo := newTestServer(t)

			rec := perform(t, srv, http.MethodPost, "/api/tasks", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeBody(t, rec)["error"])
			assert.Empty(t, repo.tasks, "no row may be created")
		})
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, title := range []string{"first", "second", "third"} {
		rec := perform(t, srv, http.MethodPost, "/api/tasks", map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := perform(t, srv, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 3)
	assert.Equal(t, float64(3), tasks[0]["id"])
	assert.Equal(t, float64(2), tasks[1]["id"])
	assert.Equal(t, float64(1), tasks[2]["id"])
}

func TestUpdateValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	// Non-numeric id
	rec := perform(t, srv, http.MethodPut, "/api/tasks/abc", map[string]any{"isCompleted": true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// No fields supplied
	rec = perform(t, srv, http.MethodPost, "/api/tasks", map[string]any{"title": "Buy milk"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = perform(t, srv, http.MethodPut, "/api/tasks/1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteNonexistentReturn404(t *testing.T) {
	srv, repo := newTestServer(t)

	rec := perform(t, srv, http.MethodPut, "/api/tasks/42", map[string]any{"isCompleted": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = perform(t, srv, http.MethodDelete, "/api/tasks/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Empty(t, repo.tasks, "table must be unchanged")
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv, _ := newTestServer(t)

		rec := perform(t, srv, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.NotEmpty(t, body["message"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("database unreachable", func(t *testing.T) {
		srv, repo := newTestServer(t)
		repo.healthErr = assert.AnError

		rec := perform(t, srv, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Service unhealthy", body["error"])
		assert.NotEmpty(t, body["details"])
	})
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := perform(t, srv, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "The requested resource was not found", decodeBody(t, rec)["error"])
}
