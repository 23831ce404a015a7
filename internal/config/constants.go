package config

import "time"

// Environment variable names
const (
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvEnvironment         = "ENVIRONMENT"
	EnvServiceName         = "SERVICE_NAME"
	EnvVersion             = "VERSION"
	EnvAPIKey              = "API_KEY"
	EnvRateLimitPerMinute  = "RATE_LIMIT_PER_MINUTE"
	EnvCORSAllowedOrigins  = "CORS_ALLOWED_ORIGINS"
	EnvDatabaseURL         = "DATABASE_URL"
	EnvDBMaxConns          = "DB_MAX_CONNS"
	EnvDBMaxConnIdle       = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLife       = "DB_MAX_CONN_LIFE"
	EnvItemsConfigPath     = "ITEMS_CONFIG_PATH"
	EnvDayTickInterval     = "DAY_TICK_INTERVAL"
	EnvWorkerCount         = "WORKER_COUNT"
	EnvWorkerQueueSize     = "WORKER_QUEUE_SIZE"
	EnvConjuredDegradeRate = "CONJURED_DEGRADE_RATE"
	EnvItemCacheSize       = "ITEM_CACHE_SIZE"
	EnvItemCacheTTL        = "ITEM_CACHE_TTL"
)

// Default values
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "gildedrose"
	DefaultVersion             = "dev"
	DefaultRateLimitPerMinute  = 100
	DefaultDBMaxConns          = 10
	DefaultDBMaxConnIdle       = 5 * time.Minute
	DefaultDBMaxConnLife       = time.Hour
	DefaultItemsConfigPath     = "configs/items.json"
	DefaultDayTickInterval     = time.Duration(0)
	DefaultWorkerCount         = 1
	DefaultWorkerQueueSize     = 16
	DefaultConjuredDegradeRate = 2
	DefaultItemCacheSize       = 256
	DefaultItemCacheTTL        = time.Minute
)

// Error messages
const (
	ErrFmtInvalidInt      = "invalid %s value: %w"
	ErrFmtInvalidDuration = "invalid %s value: %w"
	ErrMsgValidation      = "configuration validation failed"
)

// Warning messages
const (
	WarnMsgMemoryStoreInProd = "DATABASE_URL is empty in production; inventory will not survive a restart"
	WarnMsgNoAPIKeyInProd    = "API_KEY is empty in production; write endpoints are unauthenticated"
	WarnMsgSchedulerDisabled = "DAY_TICK_INTERVAL is 0; days only advance through the API"
)
