package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/database"
	"github.com/osse101/GildedRose_Go/internal/database/memory"
	"github.com/osse101/GildedRose_Go/internal/database/postgres"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// Store holds the inventory repository and, for Postgres, its pool
type Store struct {
	Inventory repository.Inventory
	Kind      string

	pool *pgxpool.Pool
}

// OpenStore selects the inventory backend. An empty DATABASE_URL gives the
// in-memory store; otherwise migrations run before the pool is opened.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	if !cfg.UsesDatabase() {
		slog.Info(LogMsgStoreOpened, "store", StoreKindMemory)
		return &Store{Inventory: memory.NewInventoryRepository(), Kind: StoreKindMemory}, nil
	}

	if _, err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf(ErrMsgMigrateDatabase, err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdle:     cfg.DBMaxConnIdle,
		MaxConnLife:     cfg.DBMaxConnLife,
		ApplicationName: cfg.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenDatabase, err)
	}

	slog.Info(LogMsgStoreOpened, "store", StoreKindPostgres, "max_conns", cfg.DBMaxConns)
	return &Store{
		Inventory: postgres.NewInventoryRepository(pool),
		Kind:      StoreKindPostgres,
		pool:      pool,
	}, nil
}

// Pool returns the database pool for readiness checks, or nil for the memory store
func (s *Store) Pool() database.Pool {
	if s.pool == nil {
		return nil
	}
	return s.pool
}

// Close releases database connections
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
