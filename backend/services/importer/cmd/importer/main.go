package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"traillog/backend/libs/db"
	"traillog/backend/libs/logging"
	"traillog/backend/services/importer/internal/clients"
	"traillog/backend/services/importer/internal/config"
	"traillog/backend/services/importer/internal/importer"
	"traillog/backend/services/importer/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // best-effort flush

	var store importer.ActivityStore
	if cfg.SeedEnabled() {
		pool, err := db.NewPostgres(cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to connect to remote store", zap.Error(err))
		}
		defer pool.Close()
		store = repository.NewActivityRepository(pool)
	}

	var notifier importer.CacheNotifier
	if cfg.NotifyEnabled() {
		notifier = clients.NewDashboardClient(cfg.Dashboard.BaseURL, cfg.Dashboard.Secret, logger)
	}

	pipeline := importer.New(importer.Options{
		SourceFiles: cfg.Source.Files,
		CachePath:   cfg.Cache.Path,
		BatchSize:   cfg.BatchSize,
	}, store, notifier, logger)

	if _, err := pipeline.Run(ctx); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}
