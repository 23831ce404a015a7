package bootstrap

import (
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the app configuration
// and reports any configuration warnings through it
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.ForEnvironment(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"uses_database", cfg.UsesDatabase(),
		"items_config", cfg.ItemsConfigPath,
		"day_tick_interval", cfg.DayTickInterval,
		"conjured_degrade_rate", cfg.ConjuredDegradeRate)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
