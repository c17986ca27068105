package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"taskify/src/infra/config"
)

// createTasksTable is the only DDL the service manages. It is safe to run
// on every startup; versioned migrations are intentionally out of scope.
const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
    id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    title        VARCHAR(255) NOT NULL,
    description  VARCHAR(1000),
    is_completed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ
)`

// Provision ensures the application database and the tasks table exist.
// Both steps are idempotent. Each step uses a short-lived connection that
// is released before Provision returns, regardless of outcome. Any failure
// propagates to the caller; no partial-state repair is attempted.
func Provision(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) error {
	if err := ensureDatabase(ctx, cfg); err != nil {
		return fmt.Errorf("ensure database %q: %w", cfg.Name, err)
	}
	if err := ensureTasksTable(ctx, cfg); err != nil {
		return fmt.Errorf("ensure tasks table: %w", err)
	}

	log.Info("schema provisioned", "database", cfg.Name)
	return nil
}

// ensureDatabase creates the application database if the catalog shows it
// absent, using a transient connection to the administrative database.
func ensureDatabase(ctx context.Context, cfg config.DatabaseConfig) error {
	conn, err := pgx.Connect(ctx, cfg.AdminDSN())
	if err != nil {
		return fmt.Errorf("connect administrative database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	const lookup = `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`
	if err := conn.QueryRow(ctx, lookup, cfg.Name).Scan(&exists); err != nil {
		return fmt.Errorf("catalog lookup: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot take bind parameters; the name comes from
	// configuration and is sanitized as an identifier.
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.Name}.Sanitize()); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	return nil
}

// ensureTasksTable runs the create-if-absent DDL inside the application
// database over its own transient connection.
func ensureTasksTable(ctx context.Context, cfg config.DatabaseConfig) error {
	conn, err := pgx.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect application database: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}
