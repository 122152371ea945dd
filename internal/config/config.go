// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// StorageBackend selects the repository implementation: "postgres"
	// (default) or "memory". The memory backend loses all data on restart.
	StorageBackend string

	// DatabaseURL is the Postgres connection string.
	// Required when StorageBackend is "postgres".
	DatabaseURL string

	// AutoMigrate applies pending goose migrations at startup. Defaults to true.
	AutoMigrate bool

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// All problems (missing required variables, unparsable values) are reported
// together in a single error.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StoragePostgres)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var problems []string

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "required environment variables not set: DATABASE_URL")
		}
	case StorageMemory:
	default:
		problems = append(problems, fmt.Sprintf("STORAGE_BACKEND must be %q or %q, got %q",
			StoragePostgres, StorageMemory, cfg.StorageBackend))
	}

	autoMigrate, err := strconv.ParseBool(getEnv("AUTO_MIGRATE", "true"))
	if err != nil {
		problems = append(problems, fmt.Sprintf("AUTO_MIGRATE: %v", err))
	}
	cfg.AutoMigrate = autoMigrate

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		problems = append(problems, "MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// LoadEnvFiles populates the process environment from dotenv files.
// If ENV_FILE is set only that file is read; otherwise .env.local and then
// .env are read from the working directory. Variables that are already set
// are never overwritten, and missing files are not an error.
func LoadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("config.LoadEnvFiles: %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("config.LoadEnvFiles: %s: %w", name, err)
		}
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
