// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// APIBaseURL is the public base URL of this API, used by clients.
	// Defaults to "http://localhost:8080".
	APIBaseURL string

	// UploadsBaseURL is the public base URL under which uploaded files are
	// served. Defaults to APIBaseURL + "/uploads". Item icons live directly
	// under it; point photos under its "points/" subpath.
	UploadsBaseURL string

	// UploadsDir is the local directory where uploaded files are stored and
	// from which /uploads/* is served. Defaults to "./uploads".
	UploadsDir string

	// MaxUploadBytes caps request bodies; the multipart create-point request
	// is the largest the API accepts. Defaults to 10 MiB.
	// Set MAX_UPLOAD_BYTES to override.
	MaxUploadBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		APIBaseURL:     strings.TrimSuffix(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		UploadsDir:     getEnv("UPLOADS_DIR", "./uploads"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
	}
	cfg.UploadsBaseURL = strings.TrimSuffix(getEnv("UPLOADS_BASE_URL", cfg.APIBaseURL+"/uploads"), "/")

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt64 returns the integer value of the environment variable named by
// key, or fallback if the variable is unset, empty, or not a valid integer.
func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
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
