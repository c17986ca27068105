// Package db provides connection and schema lifecycle management for
// PostgreSQL.
//
// This package is responsible for:
//   - Idempotent provisioning of the application database and tasks table
//   - Lazy, exactly-once initialization of the process-wide connection pool
//   - Parameterized statement execution with a closed scalar parameter union
//   - Connection health checks
//
// Example usage:
//
//	mgr := db.NewManager(cfg.Database, log)
//	defer mgr.Close()
//	exec := db.NewExecutor(mgr, log)
//	rows, err := exec.Query(ctx, "SELECT ... WHERE id = @id", db.Params{"id": db.Int(1)})
package db
