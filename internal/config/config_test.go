package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkanjana/travel-planner/internal/config"
)

// TestLoad_defaults verifies that with nothing set the server comes up on the
// zero-setup sqlite driver with sensible fallbacks.
func TestLoad_defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "STORAGE_DRIVER",
		"DATABASE_URL", "SQLITE_PATH", "OWNER_ID",
		"WEATHER_GEOCODING_URL", "WEATHER_FORECAST_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, config.DriverSQLite, cfg.StorageDriver)
	require.Equal(t, "travel-planner.db", cfg.SQLitePath)
	require.Equal(t, "local", cfg.OwnerID)
	require.Empty(t, cfg.WeatherGeocodingURL)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/travelplanner")
	t.Setenv("OWNER_ID", "user-42")
	t.Setenv("WEATHER_FORECAST_URL", "http://localhost:9999/v1/forecast")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, config.DriverPostgres, cfg.StorageDriver)
	require.Equal(t, "postgres://user:pass@db:5432/travelplanner", cfg.DatabaseURL)
	require.Equal(t, "user-42", cfg.OwnerID)
	require.Equal(t, "http://localhost:9999/v1/forecast", cfg.WeatherForecastURL)
}

// TestLoad_postgresRequiresDatabaseURL verifies that the postgres driver
// refuses to start without a connection string, naming the variable.
func TestLoad_postgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DATABASE_URL")
}

// TestLoad_unknownDriver verifies that a typoed driver name is rejected
// rather than silently falling back.
func TestLoad_unknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mysql")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "STORAGE_DRIVER")
}
