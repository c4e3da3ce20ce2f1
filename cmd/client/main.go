package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-budget-vault/internal/adapter"
	"github.com/MKhiriev/go-budget-vault/internal/client"
	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/service"
	"github.com/MKhiriev/go-budget-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("budget-vault-client", cfg.App.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	var remote adapter.RemoteChangeLog
	if cfg.RemoteConfigured() {
		remote, err = adapter.NewHTTPRemoteChangeLog(cfg.Adapter, cfg.App, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create remote changelog adapter")
		}
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(localStorage, remote, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	watchVisibility(ctx, app)
	runErr := app.Execute(ctx, cfg.Command)

	services.Close()
	if err = localStorage.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}

	if errors.Is(runErr, client.ErrUsage) {
		fmt.Fprintf(os.Stderr, "%v\n\n%s\n", runErr, client.Usage)
		os.Exit(2)
	}
	if runErr != nil {
		log.Err(runErr).Str("user_message", service.UserMessage(runErr)).Msg("client run error")
		fmt.Fprintln(os.Stderr, service.UserMessage(runErr))
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
