package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/handler"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mailer"
	"github.com/MKhiriev/go-user-auth/internal/ratelimit"
	"github.com/MKhiriev/go-user-auth/internal/server"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/workers"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	if err := run(buildInfo); err != nil {
		fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo) error {
	log := logger.NewLogger("user-auth-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}
	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	tokens, err := crypto.NewTokenIssuer(cfg.App)
	if err != nil {
		log.Err(err).Msg("error creating token issuer")
		return err
	}
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)

	dispatcher := workers.NewMailDispatcher(mailer.NewSender(cfg.Mailer, log), cfg.Workers, log)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	background := workers.NewWorkers(dispatcher)
	background.Start(workerCtx)
	defer func() {
		stopWorkers()
		background.Wait()
		log.Info().Msg("background workers stopped")
	}()

	limiter := ratelimit.NewLimiter(storages.Redis, cfg.RateLimit, log)

	services, err := service.NewServices(storages, hasher, tokens, dispatcher, cfg.App, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, limiter, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	log.Info().Str("version", cfg.App.Version).Msg("starting server")
	return srv.RunServer(ctx)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
