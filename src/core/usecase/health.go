package usecase

import (
	"context"
	"log/slog"

	"taskify/src/core/ports"
)

// HealthService checks the service's critical dependency, the database.
type HealthService struct {
	repo ports.TaskRepository
	log  *slog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(repo ports.TaskRepository, log *slog.Logger) *HealthService {
	return &HealthService{repo: repo, log: log}
}

// Check pings the database through the pool. On the very first request of
// the process this also triggers schema provisioning and pool creation.
func (s *HealthService) Check(ctx context.Context) error {
	if err := s.repo.Health(ctx); err != nil {
		s.log.Warn("health check failed", "error", err)
		return err
	}
	return nil
}
