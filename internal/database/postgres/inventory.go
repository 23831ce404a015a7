package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

const (
	queryGetAllItems = `SELECT item_id, name, sell_in, quality FROM items ORDER BY item_id`
	queryGetItemByID = `SELECT item_id, name, sell_in, quality FROM items WHERE item_id = $1`
	queryInsertItem  = `INSERT INTO items (name, sell_in, quality) VALUES ($1, $2, $3) RETURNING item_id`
	queryCountItems  = `SELECT COUNT(*) FROM items`
	queryCurrentDay  = `SELECT current_day FROM simulation_state WHERE id = 1`
	queryUpdateItem  = `UPDATE items SET sell_in = $2, quality = $3, updated_at = NOW() WHERE item_id = $1`
	querySaveDay     = `INSERT INTO simulation_state (id, current_day, updated_at) VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET current_day = EXCLUDED.current_day, updated_at = EXCLUDED.updated_at`
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

var _ repository.Inventory = (*InventoryRepository)(nil)

// GetAllItems retrieves all items ordered by ID
func (r *InventoryRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, queryGetAllItems)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToGetItems, err)
	}

	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToGetItems, err)
	}

	return items, nil
}

// GetItemByID retrieves an item by ID
func (r *InventoryRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	rows, err := r.pool.Query(ctx, queryGetItemByID, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToGetItem, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf(ErrMsgFailedToGetItem, err)
	}

	return &item, nil
}

// InsertItem stores a new item and returns its ID
func (r *InventoryRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, queryInsertItem, item.Name, item.SellIn, item.Quality).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgFailedToInsertItem, err)
	}
	return id, nil
}

// InsertItems stores every item in one transaction and returns the IDs in order
func (r *InventoryRepository) InsertItems(ctx context.Context, items []domain.Item) ([]int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for i := range items {
		batch.Queue(queryInsertItem, items[i].Name, items[i].SellIn, items[i].Quality)
	}

	ids := make([]int, len(items))
	results := tx.SendBatch(ctx, batch)
	for i := range items {
		if err := results.QueryRow().Scan(&ids[i]); err != nil {
			_ = results.Close()
			return nil, fmt.Errorf(ErrMsgFailedToInsertItem, err)
		}
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToInsertItem, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return ids, nil
}

// CountItems returns the number of stocked items
func (r *InventoryRepository) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, queryCountItems).Scan(&count); err != nil {
		return 0, fmt.Errorf(ErrMsgFailedToCountItems, err)
	}
	return count, nil
}

// GetCurrentDay returns the stored day counter
func (r *InventoryRepository) GetCurrentDay(ctx context.Context) (int, error) {
	var day int
	err := r.pool.QueryRow(ctx, queryCurrentDay).Scan(&day)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgFailedToGetDay, err)
	}
	return day, nil
}

// SaveDay writes every item and the day counter in one transaction
func (r *InventoryRepository) SaveDay(ctx context.Context, day int, items []domain.Item) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for i := range items {
		batch.Queue(queryUpdateItem, items[i].ID, items[i].SellIn, items[i].Quality)
	}
	batch.Queue(querySaveDay, day)

	results := tx.SendBatch(ctx, batch)
	for i := range items {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return fmt.Errorf(ErrMsgFailedToUpdateItem, items[i].ID, err)
		}
		if tag.RowsAffected() == 0 {
			_ = results.Close()
			return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, items[i].ID)
		}
	}
	if _, err := results.Exec(); err != nil {
		_ = results.Close()
		return fmt.Errorf(ErrMsgFailedToSaveDay, err)
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf(ErrMsgFailedToSaveDay, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func scanItem(row pgx.CollectableRow) (domain.Item, error) {
	var item domain.Item
	err := row.Scan(&item.ID, &item.Name, &item.SellIn, &item.Quality)
	return item, err
}
