package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		assert.Empty(t, cfg.DatabaseURL)
		assert.False(t, cfg.UsesDatabase())
		assert.Equal(t, DefaultItemsConfigPath, cfg.ItemsConfigPath)
		assert.Equal(t, time.Duration(0), cfg.DayTickInterval)
		assert.Equal(t, DefaultConjuredDegradeRate, cfg.ConjuredDegradeRate)
		assert.Equal(t, DefaultItemCacheTTL, cfg.ItemCacheTTL)
		assert.Equal(t, DefaultRateLimitPerMinute, cfg.RateLimitPerMinute)
		assert.Empty(t, cfg.CORSAllowedOrigins)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/gildedrose?sslmode=disable")
		t.Setenv("DB_MAX_CONNS", "4")
		t.Setenv("ITEMS_CONFIG_PATH", "/etc/gildedrose/items.json")
		t.Setenv("DAY_TICK_INTERVAL", "30s")
		t.Setenv("WORKER_COUNT", "2")
		t.Setenv("WORKER_QUEUE_SIZE", "8")
		t.Setenv("CONJURED_DEGRADE_RATE", "3")
		t.Setenv("ITEM_CACHE_SIZE", "64")
		t.Setenv("ITEM_CACHE_TTL", "5m")
		t.Setenv("API_KEY", "secret")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.True(t, cfg.UsesDatabase())
		assert.Equal(t, 4, cfg.DBMaxConns)
		assert.Equal(t, "/etc/gildedrose/items.json", cfg.ItemsConfigPath)
		assert.Equal(t, 30*time.Second, cfg.DayTickInterval)
		assert.Equal(t, 2, cfg.WorkerCount)
		assert.Equal(t, 8, cfg.WorkerQueueSize)
		assert.Equal(t, 3, cfg.ConjuredDegradeRate)
		assert.Equal(t, 64, cfg.ItemCacheSize)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, 0, cfg.RateLimitPerMinute)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, 5*time.Minute, cfg.ItemCacheTTL)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("returns error for invalid duration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DAY_TICK_INTERVAL", "daily")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid DAY_TICK_INTERVAL")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"max valid port", "65535", false},
			{"zero port", "0", true},
			{"negative port", "-1", true},
			{"above max port", "65536", true},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("rejects conjured rate below one", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("CONJURED_DEGRADE_RATE", "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgValidation)
		assert.Contains(t, err.Error(), "ConjuredDegradeRate")
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogFormat")
	})
}

func TestWarnings(t *testing.T) {
	t.Run("memory store in production", func(t *testing.T) {
		cfg := &Config{Environment: "prod", APIKey: "secret", DayTickInterval: time.Minute}
		assert.Equal(t, []string{WarnMsgMemoryStoreInProd}, cfg.Warnings())
	})

	t.Run("missing api key in production", func(t *testing.T) {
		cfg := &Config{Environment: "production", DatabaseURL: "postgres://x", DayTickInterval: time.Minute}
		assert.Equal(t, []string{WarnMsgNoAPIKeyInProd}, cfg.Warnings())
	})

	t.Run("missing api key outside production is fine", func(t *testing.T) {
		cfg := &Config{Environment: "dev", DatabaseURL: "postgres://x", DayTickInterval: time.Minute}
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("scheduler disabled", func(t *testing.T) {
		cfg := &Config{Environment: "dev", DatabaseURL: "postgres://x"}
		assert.Equal(t, []string{WarnMsgSchedulerDisabled}, cfg.Warnings())
	})

	t.Run("no warnings", func(t *testing.T) {
		cfg := &Config{Environment: "prod", APIKey: "secret", DatabaseURL: "postgres://x", DayTickInterval: time.Hour}
		assert.Empty(t, cfg.Warnings())
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion, EnvAPIKey,
		EnvRateLimitPerMinute, EnvCORSAllowedOrigins,
		EnvDatabaseURL, EnvDBMaxConns, EnvDBMaxConnIdle, EnvDBMaxConnLife,
		EnvItemsConfigPath, EnvDayTickInterval, EnvWorkerCount, EnvWorkerQueueSize,
		EnvConjuredDegradeRate, EnvItemCacheSize, EnvItemCacheTTL,
	}

	for _, key := range envVars {
		// Setenv registers a restore of the original value on cleanup
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
