package database

import "time"

// Connection pool settings
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
	PingTimeout           = 5 * time.Second

	RuntimeParamApplicationName = "application_name"
)

// Migration Constants
const (
	MigrationsDir   = "migrations"
	GooseDialect    = "postgres"
	StdlibDriverPgx = "pgx"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenDatabase    = "failed to open database for migrations"
	ErrMsgFailedToSetDialect      = "failed to set goose dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToReadVersion     = "failed to read migration version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
