package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/casedesk-be/internal/config"
	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/eventbus"
	"github.com/grachmannico95/casedesk-be/internal/handler"
	"github.com/grachmannico95/casedesk-be/internal/importer"
	"github.com/grachmannico95/casedesk-be/internal/server"
	"github.com/grachmannico95/casedesk-be/internal/service"
	"github.com/grachmannico95/casedesk-be/internal/storage"
	"github.com/grachmannico95/casedesk-be/internal/validation"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
	"github.com/grachmannico95/casedesk-be/pkg/token"
)

const demoSeed = 20240615

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo := storage.NewMemoryStore()
	log.Info(ctx, "Repository initialized")

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	activityConsumer := eventbus.NewActivityConsumer(
		repo,
		log,
		cfg.Worker.PoolSize,
	)
	log.Info(ctx, "Activity consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	err := bus.Subscribe(eventbus.EventTypeCaseActivity, activityConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	validator := validation.New()
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn)

	authService := service.NewAuthService(repo, tokens, log)
	caseService := service.NewCaseService(repo, validator, bus, log)
	importService := service.NewImportService(
		importer.NewCSVParser(),
		validator,
		service.NewCaseImporter(authService, caseService),
		authService,
		importer.SessionConfig{
			MaxFileBytes: cfg.Import.MaxFileBytes,
			MaxRows:      cfg.Import.MaxRows,
		},
		log,
	)
	log.Info(ctx, "Services initialized")

	if cfg.Seed.DemoData {
		if err := authService.EnsureUser(ctx, "test@example.com", "password123", "Test User", domain.RoleAdmin); err != nil {
			log.Fatal(ctx, "Failed to seed demo user", "error", err)
		}
		if err := storage.SeedDemoCases(ctx, repo, storage.DemoCaseCount, demoSeed); err != nil {
			log.Fatal(ctx, "Failed to seed demo cases", "error", err)
		}
		log.Info(ctx, "Demo data seeded", "cases", storage.DemoCaseCount)
	}

	handlers := server.Handlers{
		Auth:   handler.NewAuthHandler(authService, log),
		Case:   handler.NewCaseHandler(caseService, log),
		Import: handler.NewImportHandler(importService, log, cfg.Import.MaxFileBytes),
		Health: handler.NewHealthHandler(),
	}
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, authService, handlers)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// HTTP first so no new events are published, then drain the bus.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
