package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// SeedInventory loads the starting stock from path and inserts it into an
// empty store. A missing file falls back to the built-in stock; a file that
// exists but is invalid is an error.
func SeedInventory(ctx context.Context, path string, repo repository.Inventory) (*item.SeedResult, error) {
	slog.Info(LogMsgSeedingInventory, "path", path)
	loader := item.NewLoader()

	cfg, err := loadItemsConfig(loader, path)
	if err != nil {
		return nil, err
	}

	result, err := loader.Seed(ctx, cfg, repo)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSeedInventory, err)
	}
	return result, nil
}

func loadItemsConfig(loader item.Loader, path string) (*item.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgItemsFileMissing, "path", path)
		return item.DefaultConfig(), nil
	}

	cfg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadItemsConfig, err)
	}
	return cfg, nil
}
