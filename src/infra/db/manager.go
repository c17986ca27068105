package db

import (
	"context"
	"log/slog"
	"sync"

	"taskify/src/infra/config"
)

// Manager owns the process-wide connection pool handle.
//
// The pool is opened lazily: the first caller of Get runs the schema
// provisioner and opens the pool while concurrent callers wait on the
// mutex and then observe the cached handle. A failed initialization is
// not cached; the next request attempts it again. Provisioning DDL and
// pool creation therefore run at most once per process on the success path.
type Manager struct {
	cfg config.DatabaseConfig
	log *slog.Logger

	mu sync.Mutex
	pg *Postgres
}

// NewManager creates a Manager. No connection is made until Get is called.
func NewManager(cfg config.DatabaseConfig, log *slog.Logger) *Manager {
	return &Manager{cfg: cfg, log: log}
}

// Get returns the pool handle, initializing it on first use.
// Subsequent calls return the cached handle without re-checking schema.
func (m *Manager) Get(ctx context.Context) (*Postgres, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pg != nil {
		return m.pg, nil
	}

	if err := Provision(ctx, m.cfg, m.log); err != nil {
		return nil, err
	}

	pg, err := New(ctx, m.cfg, m.log)
	if err != nil {
		return nil, err
	}

	m.pg = pg
	return pg, nil
}

// Close releases the pool if it was opened. Safe to call before first use
// and more than once. Called by main during graceful shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pg != nil {
		m.pg.Close()
		m.pg = nil
	}
}
