package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// Service defines the inventory feature interface
type Service interface {
	ListItems(ctx context.Context) (*domain.Snapshot, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	AddItem(ctx context.Context, name string, sellIn, quality int) (*domain.Item, error)
	AdvanceDays(ctx context.Context, days int) (*domain.Snapshot, error)
	CurrentDay(ctx context.Context) (int, error)
	Shutdown(ctx context.Context) error
}

// Options tunes the service; zero values fall back to defaults
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo   repository.Inventory
	engine *Engine
	cache  *itemCache

	// mu serializes writes so a scheduled tick and an API advance never interleave
	mu     sync.Mutex
	closed bool
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, engine *Engine, opts Options) Service {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultItemCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultItemCacheTTL
	}

	return &service{
		repo:   repo,
		engine: engine,
		cache:  newItemCache(opts.CacheSize, opts.CacheTTL),
	}
}

// ListItems returns every stocked item and the current day
func (s *service) ListItems(ctx context.Context) (*domain.Snapshot, error) {
	day, err := s.repo.GetCurrentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDayFailed, err)
	}

	items, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadItemsFailed, err)
	}
	resolveCategories(items)

	return &domain.Snapshot{Day: day, Items: items}, nil
}

// GetItem returns a single item, served from cache when possible
func (s *service) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	if item, ok := s.cache.Get(id); ok {
		return &item, nil
	}

	gen := s.cache.Generation()
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, id, err)
	}
	item.ResolveCategory()

	s.cache.SetIfCurrent(*item, gen)
	return item, nil
}

// AddItem stocks a new item
func (s *service) AddItem(ctx context.Context, name string, sellIn, quality int) (*domain.Item, error) {
	item := domain.NewItem(name, sellIn, quality)
	if err := domain.ValidateNewItem(item); err != nil {
		return nil, fmt.Errorf("%w: %s", err, item.String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrShuttingDown
	}

	id, err := s.repo.InsertItem(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertFailed, name, err)
	}
	item.ID = id
	s.cache.Clear()

	metrics.RecordStocked(item.Category)
	logger.FromContext(ctx).Info(LogMsgItemStocked,
		"id", item.ID,
		"name", item.Name,
		"category", item.Category.String())

	return &item, nil
}

// AdvanceDays runs the day update days times and persists the result once.
// Nothing is stored if any step fails.
func (s *service) AdvanceDays(ctx context.Context, days int) (*domain.Snapshot, error) {
	if days < 1 || days > domain.MaxDaysPerAdvance {
		return nil, fmt.Errorf(ErrFmtDaysOutOfRange, domain.ErrInvalidDays, domain.MaxDaysPerAdvance, days)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrShuttingDown
	}

	log := logger.FromContext(ctx)

	day, err := s.repo.GetCurrentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDayFailed, err)
	}

	items, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadItemsFailed, err)
	}

	log.Debug(LogMsgAdvancingDays, "from_day", day, "days", days, "items", len(items))

	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.engine.AdvanceOneDay(items)
	}

	newDay := day + days
	if err := s.repo.SaveDay(ctx, newDay, items); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveDayFailed, newDay, err)
	}
	s.cache.Clear()

	metrics.RecordAdvance(days, newDay, items)
	log.Info(LogMsgDaysAdvanced, "day", newDay, "days", days, "items", len(items))

	return &domain.Snapshot{Day: newDay, Items: items}, nil
}

// CurrentDay returns the number of days simulated so far
func (s *service) CurrentDay(ctx context.Context) (int, error) {
	day, err := s.repo.GetCurrentDay(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgLoadDayFailed, err)
	}
	return day, nil
}

// Shutdown waits for an in-flight advance and rejects further writes
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShutdownStarted)

	done := make(chan struct{})
	go func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func resolveCategories(items []domain.Item) {
	for i := range items {
		items[i].ResolveCategory()
	}
}
