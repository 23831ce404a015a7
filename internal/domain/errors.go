package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgInvalidItem     = "invalid item"
	ErrMsgQualityTooHigh  = "quality above maximum"
	ErrMsgNegativeQuality = "quality is negative"

	// Simulation errors
	ErrMsgInvalidDays  = "invalid number of days"
	ErrMsgShuttingDown = "service is shutting down"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidItem     = errors.New(ErrMsgInvalidItem)
	ErrQualityTooHigh  = errors.New(ErrMsgQualityTooHigh)
	ErrNegativeQuality = errors.New(ErrMsgNegativeQuality)

	ErrInvalidDays  = errors.New(ErrMsgInvalidDays)
	ErrShuttingDown = errors.New(ErrMsgShuttingDown)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ValidateNewItem checks a freshly stocked item. Legendary items may carry
// quality above MaxQuality; everything else must start inside the bounds.
func ValidateNewItem(item Item) error {
	if item.Name == "" {
		return ErrInvalidItem
	}
	if item.Quality < MinQuality {
		return ErrNegativeQuality
	}
	if item.Quality > MaxQuality && CategoryForName(item.Name) != CategoryLegendary {
		return ErrQualityTooHigh
	}
	return nil
}
