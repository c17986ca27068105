// Package main is the entry point for the Taskify API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"log"
	"os"

	"taskify/src/app/server"
	"taskify/src/infra/config"
	"taskify/src/infra/db"
	"taskify/src/infra/logger"
	"taskify/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"database", cfg.Database.Name,
		"log_level", cfg.Log.Level,
	)

	// The pool manager opens no connection yet; schema provisioning and
	// pool creation happen on the first data-access request.
	mgr := db.NewManager(cfg.Database, logger.WithComponent(log, "db"))
	defer mgr.Close()

	executor := db.NewExecutor(mgr, logger.WithComponent(log, "executor"))
	taskRepo := repo.NewTaskRepository(executor, log)

	// Create and run HTTP server
	srv := server.New(cfg, log, taskRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
