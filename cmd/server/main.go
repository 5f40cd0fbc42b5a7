package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/bcard/internal/app"
	"github.com/nfrund/bcard/internal/config"
	"github.com/nfrund/bcard/internal/logging"
	"github.com/nfrund/bcard/internal/server"
)

func main() {
	// Loads .env first so LOG_FORMAT and LOG_LEVEL apply to the logger.
	cfg, err := config.New()
	logging.New()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting bcard", "env", cfg.GetAppEnv(), "addr", cfg.GetAddr(), "api", cfg.GetAPIBaseURL())

	injector := app.NewInjector(cfg)
	s, err := server.New(cfg, injector, app.NewModules())
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}
	if err := s.RegisterRoutes(context.Background()); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	s.Start(cfg.GetAddr())
}
