package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/handler"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/server"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/workers"
	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		buildInfo.BuildVersion(), buildInfo.BuildDate(), buildInfo.BuildCommit())

	log := logger.NewLogger("user-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("db_driver", cfg.Storage.DB.DriverName()).
		Int("lockout_threshold", cfg.Lockout.FailureThreshold()).
		Dur("lockout_cooldown", cfg.Lockout.Cooldown).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(services.Governor, cfg.Workers, log).Run(ctx)
	})

	err = srv.RunServer(ctx)
	stop()
	wg.Wait()

	if err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		storages.Close()
		os.Exit(1)
	}
}
