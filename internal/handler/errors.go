package handler

import (
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidItemID         = "Invalid item ID"

	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgInvalidItemError     = "Item name must not be empty"
	ErrMsgNegativeQualityError = "Quality must not be negative"
)

// Messages that embed domain limits
var (
	ErrMsgQualityTooHighError = fmt.Sprintf("Quality must not exceed %d unless the item is legendary", domain.MaxQuality)
	ErrMsgInvalidDaysError    = fmt.Sprintf("Days must be between 1 and %d", domain.MaxDaysPerAdvance)
)

// Log messages
const (
	LogMsgItemAdded        = "Item added via API"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgInvalidIDParam   = "Invalid ID parameter"
	LogMsgEncodeJSONFailed = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"

	LogFmtDecodeFailed   = "Failed to decode %s request"
	LogFmtRequestDecoded = "%s request decoded"
	LogFmtOpFailed       = "%s failed"
	LogFmtOpRejected     = "%s rejected"
)

// Operation names used in logs
const (
	OpListItems   = "List items"
	OpGetItem     = "Get item"
	OpAddItem     = "Add item"
	OpAdvanceDays = "Advance days"
)
