package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// InventoryRepository is an in-memory implementation of repository.Inventory.
// It is used when no database is configured and as a stateful fake in tests.
// Items are stored and returned by value so callers never alias stored state.
type InventoryRepository struct {
	mu     sync.RWMutex
	items  []domain.Item // insertion order, which is also ID order
	byID   map[int]int   // item ID -> index in items
	nextID int
	day    int
}

// NewInventoryRepository creates an empty in-memory store
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		byID:   make(map[int]int),
		nextID: 1,
	}
}

var _ repository.Inventory = (*InventoryRepository)(nil)

// GetAllItems returns a copy of all items ordered by ID
func (r *InventoryRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Item, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetItemByID returns a copy of one item
func (r *InventoryRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	item := r.items[idx]
	return &item, nil
}

// InsertItem stores the item and assigns the next ID
func (r *InventoryRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	stored := *item
	stored.ID = id
	r.byID[id] = len(r.items)
	r.items = append(r.items, stored)

	return id, nil
}

// InsertItems stores all items under one lock so readers never see a partial batch
func (r *InventoryRepository) InsertItems(ctx context.Context, items []domain.Item) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, len(items))
	for i := range items {
		stored := items[i]
		stored.ID = r.nextID
		r.nextID++

		r.byID[stored.ID] = len(r.items)
		r.items = append(r.items, stored)
		ids[i] = stored.ID
	}

	return ids, nil
}

// CountItems returns the number of stocked items
func (r *InventoryRepository) CountItems(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// GetCurrentDay returns the stored day counter
func (r *InventoryRepository) GetCurrentDay(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.day, nil
}

// SaveDay replaces the stored items and day counter. Either every item is
// written or none is.
func (r *InventoryRepository) SaveDay(ctx context.Context, day int, items []domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range items {
		if _, ok := r.byID[items[i].ID]; !ok {
			return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, items[i].ID)
		}
	}

	for i := range items {
		r.items[r.byID[items[i].ID]] = items[i]
	}
	r.day = day

	return nil
}
