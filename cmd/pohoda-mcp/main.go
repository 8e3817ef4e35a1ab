package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meteoua/pohoda-mcp/internal/config"
	"github.com/meteoua/pohoda-mcp/internal/openmeteo"
	"github.com/meteoua/pohoda-mcp/internal/server"
	"github.com/meteoua/pohoda-mcp/internal/weather"
)

const geocodeCacheEntries = 128

func main() {
	// Setup logger
	setupLogger()

	// Load configuration; the built-in defaults need no file
	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		slog.Info("Loading configuration", "path", path)
		loaded, err := config.Load(path)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := slog.Default()
	timeout := time.Duration(cfg.Timeout) * time.Millisecond

	geocoder := openmeteo.NewCachedGeocoder(
		openmeteo.NewGeocodingClient(cfg.GeocodingURL, cfg.Language, timeout, logger),
		geocodeCacheEntries,
	)
	forecasts := openmeteo.NewForecastClient(cfg.ForecastURL, cfg.Timezone, timeout, logger)
	service := weather.NewService(geocoder, forecasts, cfg, logger)

	mcpServer := server.New(service, logger)
	mcpServer.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("Serving MCP over stdio", "default_location", cfg.Location.Name)
	if err := mcpServer.Run(ctx); err != nil {
		slog.Error("Failed to run server", "error", err)
		os.Exit(1)
	}
}

func setupLogger() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if os.Getenv("LOG_LEVEL") == "DEBUG" {
		opts.Level = slog.LevelDebug
	}
	// stdout carries the MCP framing, so logs go to stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}
