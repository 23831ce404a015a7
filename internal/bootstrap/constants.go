package bootstrap

// Store kinds reported in logs
const (
	StoreKindMemory   = "memory"
	StoreKindPostgres = "postgres"
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Gilded Rose inventory"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgStoreOpened         = "Inventory store opened"
)

// Config seed messages
const (
	LogMsgSeedingInventory = "Seeding inventory from JSON config..."
	LogMsgItemsFileMissing = "Items config not found, using built-in starting stock"
	ErrMsgLoadItemsConfig  = "failed to load items config: %w"
	ErrMsgSeedInventory    = "failed to seed inventory: %w"
	ErrMsgOpenDatabase     = "failed to open database: %w"
	ErrMsgMigrateDatabase  = "failed to migrate database: %w"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping scheduler"
	LogMsgStoppingWorkers      = "Stopping worker pool"
	LogMsgClosingStore         = "Closing inventory store"
	LogMsgServerStopped        = "Server stopped"
)
