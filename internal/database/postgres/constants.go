package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetItems   = "failed to get all items: %w"
	ErrMsgFailedToGetItem    = "failed to get item: %w"
	ErrMsgFailedToInsertItem = "failed to insert item: %w"
	ErrMsgFailedToCountItems = "failed to count items: %w"
	ErrMsgFailedToGetDay     = "failed to get current day: %w"
	ErrMsgFailedToUpdateItem = "failed to update item %d: %w"
	ErrMsgFailedToSaveDay    = "failed to save day counter: %w"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
