package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"spendwise/internal/api"
	"spendwise/internal/config"
	"spendwise/internal/events"
	"spendwise/internal/storage"
	"spendwise/internal/store"
	"spendwise/internal/worker"
)

func main() {
	// Load .env for local development (ignore errors in production)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open local database", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	client, err := api.NewClient(cfg.APIBaseURL, nil)
	if err != nil {
		logger.Error("Failed to build API client", "error", err)
		os.Exit(1)
	}

	var publisher store.ChangePublisher
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to connect to AMQP broker", "error", err)
			os.Exit(1)
		}
		defer p.Close()
		publisher = p
		logger.Info("Change event publishing enabled",
			"exchange", cfg.AMQPExchange,
			"queue", cfg.AMQPQueue)
	}

	st := store.New(client, repo, publisher)
	if err := st.Restore(ctx); err != nil {
		logger.Warn("Could not restore local collection", "error", err)
	}

	reconciler := worker.NewReconciler(st, worker.Config{
		Interval: cfg.FetchInterval,
		UserID:   cfg.UserID,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := reconciler.Start(gctx); err != nil {
			return err
		}
		<-gctx.Done()
		return reconciler.Stop(context.Background())
	})

	logger.Info("Sync worker started",
		"api_base_url", cfg.APIBaseURL,
		"user_id", cfg.UserID,
		"interval", cfg.FetchInterval)

	if err := g.Wait(); err != nil {
		logger.Error("Sync worker exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Sync worker stopped")
}
