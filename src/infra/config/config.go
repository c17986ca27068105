// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_DB_HOST=db.internal
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP listen port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP listen host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
//
// Two databases are involved: AdminName is the server's administrative
// database, used only by the schema provisioner to run CREATE DATABASE;
// Name is the application database every other connection targets. The
// two configurations share all remaining fields.
type DatabaseConfig struct {
	// Host is the database host (default: localhost)
	Host string `envconfig:"DB_HOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `envconfig:"DB_PORT" default:"5432"`

	// User is the database user (default: postgres)
	User string `envconfig:"DB_USER" default:"postgres"`

	// Password is the database password (required in production)
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	// Name is the application database name (default: taskify_db)
	Name string `envconfig:"DB_NAME" default:"taskify_db"`

	// AdminName is the administrative database used for provisioning (default: postgres)
	AdminName string `envconfig:"DB_ADMIN_NAME" default:"postgres"`

	// MaxConns is the maximum pool size (default: 10)
	MaxConns int `envconfig:"DB_MAX_CONNS" default:"10"`

	// MinConns is the minimum pool size (default: 0)
	MinConns int `envconfig:"DB_MIN_CONNS" default:"0"`

	// IdleTimeout is how long an idle connection is kept before being recycled (default: 30s)
	IdleTimeout time.Duration `envconfig:"DB_IDLE_TIMEOUT" default:"30s"`

	// Encrypt enables TLS on database connections (default: false)
	Encrypt bool `envconfig:"DB_ENCRYPT" default:"false"`

	// TrustCert skips verification of the server certificate when Encrypt is on (default: false)
	TrustCert bool `envconfig:"DB_TRUST_CERT" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// SSLMode maps the encryption flags to a libpq sslmode value.
func (c *DatabaseConfig) SSLMode() string {
	switch {
	case !c.Encrypt:
		return "disable"
	case c.TrustCert:
		return "require"
	default:
		return "verify-full"
	}
}

// Validate checks the pool bounds. The pool configuration stores them as
// int32, so values outside that range would otherwise truncate silently.
func (c *DatabaseConfig) Validate() error {
	if c.MaxConns < 1 || c.MaxConns > math.MaxInt32 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and %d, got %d", math.MaxInt32, c.MaxConns)
	}
	if c.MinConns < 0 || c.MinConns > c.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS (%d), got %d", c.MaxConns, c.MinConns)
	}
	return nil
}

// DSN returns the connection string for the application database.
func (c *DatabaseConfig) DSN() string {
	return c.dsn(c.Name)
}

// AdminDSN returns the connection string for the administrative database.
// The schema provisioner uses it to create the application database.
func (c *DatabaseConfig) AdminDSN() string {
	return c.dsn(c.AdminName)
}

func (c *DatabaseConfig) dsn(database string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, database, c.SSLMode(),
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present; a missing file is not
// an error. Absent variables fall back to defaults, so Load only fails on
// malformed values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	if err := envconfig.Process("APP", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	return &cfg, nil
}
