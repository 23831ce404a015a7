package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"required"`
	LogFormat   string `validate:"oneof=json text JSON TEXT"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// APIKey guards write endpoints; empty disables auth
	APIKey string

	// RateLimitPerMinute caps API requests per client IP; 0 disables it
	RateLimitPerMinute int `validate:"min=0"`
	// CORSAllowedOrigins is parsed from a comma-separated list; empty disables CORS
	CORSAllowedOrigins []string

	// DatabaseURL selects the Postgres store; empty means in-memory
	DatabaseURL   string
	DBMaxConns    int           `validate:"min=1"`
	DBMaxConnIdle time.Duration `validate:"min=0"`
	DBMaxConnLife time.Duration `validate:"min=0"`

	ItemsConfigPath string `validate:"required"`

	// DayTickInterval is the wall-clock length of a simulated day; 0 disables the scheduler
	DayTickInterval time.Duration `validate:"min=0"`
	WorkerCount     int           `validate:"min=1"`
	WorkerQueueSize int           `validate:"min=1"`

	ConjuredDegradeRate int `validate:"min=1"`

	ItemCacheSize int           `validate:"min=1"`
	ItemCacheTTL  time.Duration `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		APIKey:          getEnv(EnvAPIKey, ""),
		DatabaseURL:     getEnv(EnvDatabaseURL, ""),
		ItemsConfigPath: getEnv(EnvItemsConfigPath, DefaultItemsConfigPath),

		CORSAllowedOrigins: splitList(getEnv(EnvCORSAllowedOrigins, "")),
	}

	var err error
	ints := []struct {
		key    string
		def    int
		target *int
	}{
		{EnvPort, DefaultPort, &cfg.Port},
		{EnvRateLimitPerMinute, DefaultRateLimitPerMinute, &cfg.RateLimitPerMinute},
		{EnvDBMaxConns, DefaultDBMaxConns, &cfg.DBMaxConns},
		{EnvWorkerCount, DefaultWorkerCount, &cfg.WorkerCount},
		{EnvWorkerQueueSize, DefaultWorkerQueueSize, &cfg.WorkerQueueSize},
		{EnvConjuredDegradeRate, DefaultConjuredDegradeRate, &cfg.ConjuredDegradeRate},
		{EnvItemCacheSize, DefaultItemCacheSize, &cfg.ItemCacheSize},
	}
	for _, v := range ints {
		if *v.target, err = getEnvAsInt(v.key, v.def); err != nil {
			return nil, err
		}
	}

	durations := []struct {
		key    string
		def    time.Duration
		target *time.Duration
	}{
		{EnvDBMaxConnIdle, DefaultDBMaxConnIdle, &cfg.DBMaxConnIdle},
		{EnvDBMaxConnLife, DefaultDBMaxConnLife, &cfg.DBMaxConnLife},
		{EnvDayTickInterval, DefaultDayTickInterval, &cfg.DayTickInterval},
		{EnvItemCacheTTL, DefaultItemCacheTTL, &cfg.ItemCacheTTL},
	}
	for _, v := range durations {
		if *v.target, err = getEnvAsDuration(v.key, v.def); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UsesDatabase reports whether the Postgres store is configured
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated value, dropping blank entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsInt parses an integer variable; unset means default, malformed is an error
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidInt, key, err)
	}
	return n, nil
}

// getEnvAsDuration parses a Go duration string such as "30s" or "1h"
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidDuration, key, err)
	}
	return d, nil
}
