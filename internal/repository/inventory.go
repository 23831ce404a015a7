package repository

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Inventory defines the interface for stocked item persistence
type Inventory interface {
	// Item operations
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) (int, error)
	// InsertItems stores every item or none and returns the IDs in order
	InsertItems(ctx context.Context, items []domain.Item) ([]int, error)
	CountItems(ctx context.Context) (int, error)

	// Simulation state
	GetCurrentDay(ctx context.Context) (int, error)

	// SaveDay stores the updated items and the new day counter atomically.
	// Items are matched by ID; unknown IDs are an error.
	SaveDay(ctx context.Context, day int, items []domain.Item) error
}
