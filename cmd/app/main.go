package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GildedRose_Go/internal/bootstrap"
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/server"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open inventory store", "error", err)
		os.Exit(1)
	}

	if _, err := bootstrap.SeedInventory(ctx, cfg.ItemsConfigPath, store.Inventory); err != nil {
		slog.Error("Failed to seed inventory", "error", err)
		store.Close()
		os.Exit(1)
	}

	rules := inventory.DefaultRules().WithConjuredDegradeRate(cfg.ConjuredDegradeRate)
	if err := rules.Validate(); err != nil {
		slog.Error("Invalid update rules", "error", err)
		store.Close()
		os.Exit(1)
	}

	inventoryService := inventory.NewService(store.Inventory, inventory.NewEngine(rules), inventory.Options{
		CacheSize: cfg.ItemCacheSize,
		CacheTTL:  cfg.ItemCacheTTL,
	})

	workerPool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.DayTickInterval, worker.NewDayTickJob(inventoryService))

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,

		RateLimit:          cfg.RateLimitPerMinute,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,

		DBPool: store.Pool(),
	}, inventoryService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: workerPool,
		Store:      store,
	})
}
