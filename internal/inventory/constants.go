package inventory

import "time"

// Rule defaults
const (
	DefaultBackstageFirstThreshold  = 10
	DefaultBackstageSecondThreshold = 5
	DefaultConjuredDegradeRate      = 2
)

// Cache defaults
const (
	DefaultItemCacheSize = 256
	DefaultItemCacheTTL  = time.Minute
)

// Error format strings
const (
	ErrFmtQualityBounds       = "%w: min quality %d is above max quality %d"
	ErrFmtBackstageThresholds = "%w: second backstage threshold %d is above first threshold %d"
	ErrFmtConjuredRate        = "%w: conjured degrade rate must be at least 1, got %d"
	ErrFmtDaysOutOfRange      = "%w: days must be between 1 and %d, got %d"
)

// Error messages
const (
	ErrMsgLoadDayFailed   = "failed to load current day: %w"
	ErrMsgLoadItemsFailed = "failed to load items: %w"
	ErrMsgSaveDayFailed   = "failed to save day %d: %w"
	ErrMsgGetItemFailed   = "failed to get item %d: %w"
	ErrMsgInsertFailed    = "failed to insert item '%s': %w"
)

// Log messages
const (
	LogMsgAdvancingDays    = "Advancing inventory"
	LogMsgDaysAdvanced     = "Inventory advanced"
	LogMsgItemStocked      = "Item stocked"
	LogMsgShutdownStarted  = "Shutting down inventory service"
	LogMsgShutdownComplete = "Inventory service shutdown complete"
	LogMsgShutdownTimeout  = "Inventory service shutdown timeout, an advance may still be running"
)
