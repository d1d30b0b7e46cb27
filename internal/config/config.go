// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StorageDriver selects the persistence backend: "postgres" for the
	// shared-database deployment or "sqlite" for the single-user local file.
	// Defaults to "sqlite" so the server runs with zero setup.
	StorageDriver string

	// DatabaseURL is the Postgres connection string.
	// Required when StorageDriver is "postgres".
	DatabaseURL string

	// SQLitePath is the local database file used by the sqlite driver.
	// Defaults to "travel-planner.db" in the working directory.
	SQLitePath string

	// OwnerID scopes all Postgres rows to one owning user. The API carries
	// no authentication of its own; deployments that put one in front set a
	// stable per-user value here. Defaults to "local".
	OwnerID string

	// WeatherGeocodingURL and WeatherForecastURL override the Open-Meteo
	// endpoints, mainly for tests and offline development. Empty values use
	// the public API.
	WeatherGeocodingURL string
	WeatherForecastURL  string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any required variable that is not set.
func Load() (Config, error) {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StorageDriver:       getEnv("STORAGE_DRIVER", DriverSQLite),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		SQLitePath:          getEnv("SQLITE_PATH", "travel-planner.db"),
		OwnerID:             getEnv("OWNER_ID", "local"),
		WeatherGeocodingURL: os.Getenv("WEATHER_GEOCODING_URL"),
		WeatherForecastURL:  os.Getenv("WEATHER_FORECAST_URL"),
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q (expected %q or %q)",
			cfg.StorageDriver, DriverPostgres, DriverSQLite)
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

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
