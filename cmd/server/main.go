package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/handler"
	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/server"
	"github.com/MKhiriev/go-room-booking/internal/service"
	"github.com/MKhiriev/go-room-booking/internal/session"
	"github.com/MKhiriev/go-room-booking/internal/store"
	"github.com/MKhiriev/go-room-booking/internal/workers"
	"github.com/MKhiriev/go-room-booking/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLogger("room-booking-server", logger.WithLevel(level), logger.WithPretty(cfg.App.LogPretty))

	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(*cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg config.StructuredConfig, buildInfo models.AppInfo, log *logger.Logger) error {
	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	sessions := session.NewMemoryStore()

	services, err := service.NewServices(storages, sessions, cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, session.NewManager(sessions, cfg.App, log), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	bg := workers.NewWorkers(
		workers.NewSessionCleanupWorker(sessions, cfg.Workers, log),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return srv.RunServer(ctx)
	})
	g.Go(func() error {
		return bg.Run(ctx)
	})

	return g.Wait()
}

func printBuildInfo(info models.AppInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
