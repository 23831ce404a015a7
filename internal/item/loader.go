package item

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/repository"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

// ErrInvalidConfig is returned when an items file fails semantic validation
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed schemas/*.json
var schemaFS embed.FS

// Config represents the JSON configuration for the starting inventory
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// ToItem converts the definition to an unsaved domain item
func (d Def) ToItem() domain.Item {
	return domain.NewItem(d.Name, d.SellIn, d.Quality)
}

// ToItems converts every definition, preserving order
func (c *Config) ToItems() []domain.Item {
	items := make([]domain.Item, len(c.Items))
	for i, def := range c.Items {
		items[i] = def.ToItem()
	}
	return items
}

// Loader handles loading, validating and seeding the item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, source string) (*Config, error)
	Validate(config *Config) error
	Seed(ctx context.Context, config *Config, repo repository.Inventory) (*SeedResult, error)
}

// SeedResult reports what Seed did
type SeedResult struct {
	ItemsInserted int
	Skipped       bool
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFS),
	}
}

// Load reads, schema-checks and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	return l.Parse(data, path)
}

// Parse schema-checks and decodes raw items JSON; source names it in errors
func (l *itemLoader) Parse(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate applies the same rules the inventory enforces for new stock.
// Duplicate names are allowed; the shop may hold several of the same item.
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	for i, def := range config.Items {
		if err := domain.ValidateNewItem(def.ToItem()); err != nil {
			return fmt.Errorf(ErrFmtItemAtIndex, ErrInvalidConfig, i, err)
		}
	}

	return nil
}

// Seed stocks an empty store with the configured items in a single write, so a
// failed seed leaves the store empty. A store that already holds items is left
// untouched so restarts never duplicate stock.
func (l *itemLoader) Seed(ctx context.Context, config *Config, repo repository.Inventory) (*SeedResult, error) {
	log := logger.FromContext(ctx)

	if err := l.Validate(config); err != nil {
		return nil, err
	}

	count, err := repo.CountItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountItemsFailed, err)
	}

	if count > 0 {
		log.Info(LogMsgSeedSkipped, "existing_items", count)
		return &SeedResult{Skipped: true}, nil
	}

	ids, err := repo.InsertItems(ctx, config.ToItems())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertItemsFailed, err)
	}
	result := &SeedResult{ItemsInserted: len(ids)}

	log.Info(LogMsgSeedCompleted, "inserted", result.ItemsInserted, "version", config.Version)
	return result, nil
}

// DefaultConfig returns the classic nine-item starting stock
func DefaultConfig() *Config {
	return &Config{
		Version:     DefaultConfigVersion,
		Description: "Starting stock of the Gilded Rose",
		Items: []Def{
			{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
			{Name: domain.NameAgedBrie, SellIn: 2, Quality: 0},
			{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
			{Name: domain.NameSulfuras, SellIn: 0, Quality: 80},
			{Name: domain.NameSulfuras, SellIn: -1, Quality: 80},
			{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 15, Quality: 20},
			{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 10, Quality: 49},
			{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 5, Quality: 49},
			{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
		},
	}
}
