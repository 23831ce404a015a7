package item

// ==================== Configuration ====================

const (
	// ConfigFileName is the name of the items configuration file
	ConfigFileName = "items.json"

	// ItemsSchemaName is the embedded schema used to validate item files
	ItemsSchemaName = "schemas/items.schema.json"

	// DefaultConfigVersion is the version reported by DefaultConfig
	DefaultConfigVersion = "1.0"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
	ErrFmtItemAtIndex    = "%w: item at index %d: %w"
)

// Seeding error messages
const (
	ErrMsgCountItemsFailed  = "failed to count existing items: %w"
	ErrMsgInsertItemsFailed = "failed to insert items: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSeedSkipped   = "Inventory already stocked, skipping seed"
	LogMsgSeedCompleted = "Inventory seeded"
)
