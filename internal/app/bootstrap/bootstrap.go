package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	identityservice "vitrine/contexts/creator-directory/identity-service"
	identitypostgres "vitrine/contexts/creator-directory/identity-service/adapters/postgres"
	moderationservice "vitrine/contexts/creator-directory/moderation-service"
	moderationpostgres "vitrine/contexts/creator-directory/moderation-service/adapters/postgres"
	moderationworkers "vitrine/contexts/creator-directory/moderation-service/application/workers"
	orderingservice "vitrine/contexts/creator-directory/ordering-service"
	orderingpostgres "vitrine/contexts/creator-directory/ordering-service/adapters/postgres"
	orderingworkers "vitrine/contexts/creator-directory/ordering-service/application/workers"
	"vitrine/internal/platform/config"
	"vitrine/internal/platform/db"
	"vitrine/internal/platform/httpserver"
	"vitrine/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  *moderationworkers.OutboxRelay
	consumer     *orderingworkers.EntryAcceptedConsumer
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	identityModule := identityservice.NewModule(identityservice.Dependencies{
		Repository: identitypostgres.NewRepository(pg.DB, logger),
		Clock:      identitypostgres.SystemClock{},
		IDGen:      identitypostgres.UUIDGenerator{},
		Logger:     logger,
	})

	moderationModule := moderationservice.NewModule(moderationservice.Dependencies{
		Repository: moderationpostgres.NewRepository(pg.DB, logger),
		Clock:      moderationpostgres.SystemClock{},
		IDGen:      moderationpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	orderingModule := orderingservice.NewModule(orderingservice.Dependencies{
		Repository: orderingpostgres.NewRepository(pg.DB, logger),
		Clock:      orderingpostgres.SystemClock{},
		Logger:     logger,
	})

	server := httpserver.New(identityModule, moderationModule, orderingModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	app := &WorkerApp{
		postgres:     pg,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}

	if cfg.EnableModerationOutboxRelay {
		app.outboxRelay = &moderationworkers.OutboxRelay{
			Outbox:    moderationpostgres.NewRepository(pg.DB, logger),
			Publisher: kafka,
			Clock:     moderationpostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		}
	}

	if cfg.EnableOrderingConsumer {
		orderingModule := orderingservice.NewModule(orderingservice.Dependencies{
			Repository: orderingpostgres.NewRepository(pg.DB, logger),
			Clock:      orderingpostgres.SystemClock{},
			Logger:     logger,
		})
		consumer := orderingModule.NewConsumer(kafka, "ordering-entry-cg", logger)
		app.consumer = &consumer
	}

	return app, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if w.consumer != nil {
		if err := w.consumer.Start(ctx); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if w.outboxRelay != nil {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
