package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/internal/client"
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var overrides config.ClientConfig
	flag.StringVar(&overrides.Adapter.HTTPAddress, "a", "", "server address (host:port or URL)")
	flag.DurationVar(&overrides.Adapter.RequestTimeout, "timeout", 0, "request timeout")
	flag.StringVar(&overrides.App.HashKey, "k", "", "HMAC key for request body signatures")
	flag.StringVar(&overrides.App.Token, "token", "", "bearer token from a previous login")
	flag.StringVar(&overrides.App.LogFile, "log", "", "log file (stderr when empty)")
	flag.Parse()

	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	log := logger.NewFileLogger("user-client", cfg.App.LogFile)
	if cfg.App.LogFile == "" {
		// keep the terminal readable
		_ = log.SetLevel("warn")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(serverAdapter, buildInfo, os.Stdout, log)

	if err = app.Run(ctx, flag.Args()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
