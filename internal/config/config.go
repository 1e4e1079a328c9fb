package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Database driver constants
const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"
)

// APIKeyHeader is the request header carrying the shared API key
const APIKeyHeader = "x-api-key"

type Config struct {
	// Server settings
	ServerAddr      string
	IsProduction    bool
	ShutdownTimeout time.Duration

	// API key shared with callers. Empty means every token request fails closed.
	APIKey string

	// Database
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string // Database connection string (DSN or path)
	DBInitTimeout  time.Duration

	// Prometheus metrics
	MetricsEnabled             bool
	MetricsToken               string        // Bearer token for /metrics (empty = no auth)
	MetricsGaugeUpdateInterval time.Duration // how often tokens_active is refreshed (0 disables)
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	driver := getEnv("DATABASE_DRIVER", DatabaseDriverSQLite)
	var dsn string
	if driver == DatabaseDriverSQLite {
		dsn = getEnv("DATABASE_DSN", getEnv("DATABASE_PATH", "tokens.db"))
	} else {
		dsn = getEnv("DATABASE_DSN", "")
	}

	return &Config{
		ServerAddr:      getEnv("SERVER_ADDR", ":8080"),
		IsProduction:    getEnv("ENVIRONMENT", "") == "production",
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),

		APIKey: getEnv("API_KEY", ""),

		DatabaseDriver: driver,
		DatabaseDSN:    dsn,
		DBInitTimeout:  getEnvDuration("DB_INIT_TIMEOUT", 30*time.Second),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", false),
		MetricsToken:   getEnv("METRICS_TOKEN", ""),
		MetricsGaugeUpdateInterval: getEnvDuration(
			"METRICS_GAUGE_UPDATE_INTERVAL",
			30*time.Second,
		),
	}
}

// Validate checks settings that would otherwise fail late at runtime.
// A missing API key is not an error here: the token routes answer 500 until one is set.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DatabaseDriverSQLite, DatabaseDriverPostgres:
	default:
		return fmt.Errorf(
			"invalid DATABASE_DRIVER: %s (must be: sqlite, postgres)",
			c.DatabaseDriver,
		)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	if c.DBInitTimeout <= 0 {
		return errors.New("DB_INIT_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
