package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/handler"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/server"
	"github.com/MKhiriev/quarantine-vault/internal/service"
	"github.com/MKhiriev/quarantine-vault/internal/store"
	"github.com/MKhiriev/quarantine-vault/internal/workers"
	"github.com/MKhiriev/quarantine-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	_ = buildInfo.Print(os.Stdout)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("quarantine-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.VersionOr("dev")
	}

	log := logger.NewLogger("quarantine-server", logger.WithLevel(cfg.App.LogLevel))
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	if err = storages.Migrate(); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services, err := service.NewServices(storages, cfg, registry, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, registry, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	// a zero interval leaves sweeping to an external scheduler
	background := workers.NewWorkers()
	if cfg.Workers.SweepInterval > 0 {
		background = workers.NewWorkers(
			workers.NewSweepWorker(services.QuarantineService, cfg.Workers.SweepInterval, log),
		)
	}
	background.Start(ctx)
	defer background.Stop()

	return srv.Run(ctx)
}
