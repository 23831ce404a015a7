package bootstrap

import (
	"context"
	"log/slog"
)

type stopper interface{ Stop() }

type contextStopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Each one is optional; nil entries are skipped.
type ShutdownComponents struct {
	Server     contextStopper
	Scheduler  stopper
	WorkerPool stopper
	Store      *Store
}

// GracefulShutdown stops components in dependency order:
//  1. scheduler (no new ticks)
//  2. HTTP server (no new requests; closes the inventory service)
//  3. worker pool (cancel any tick still running)
//  4. store
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}

	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.WorkerPool != nil {
		slog.Info(LogMsgStoppingWorkers)
		c.WorkerPool.Stop()
	}

	if c.Store != nil {
		slog.Info(LogMsgClosingStore)
		c.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
