package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkotelnikov/feedsync/internal/adapter"
	"github.com/dkotelnikov/feedsync/internal/config"
	handler "github.com/dkotelnikov/feedsync/internal/handler/http"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/service"
	"github.com/dkotelnikov/feedsync/internal/store"
	"github.com/dkotelnikov/feedsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const shutdownTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// background jobs resolve their logger from the context
	ctx = log.WithContext(ctx)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	tokenSource, err := adapter.NewOAuthTokenSource(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token source")
	}

	remote, err := adapter.NewHTTPInoreaderAdapter(cfg.Adapter, tokenSource, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote adapter")
	}

	services := service.NewServices(storages, remote, cfg, log)

	syncJob := service.NewSyncJob(services.SyncQueueService.ProcessSyncQueue)
	pullJob := service.NewSyncJob(services.PullSyncService.PullSync)

	jobs := workers.NewWorkers(
		workers.NewFuncWorker(func() { syncJob.Start(ctx, cfg.Sync.Interval) }, syncJob.Stop),
		workers.NewFuncWorker(func() { pullJob.Start(ctx, cfg.Sync.PullInterval) }, pullJob.Stop),
	)
	jobs.Run()

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddress,
		Handler:           handler.NewHandler(services, log).Init(),
		ReadHeaderTimeout: cfg.Server.RequestTimeout,
	}

	go func() {
		log.Info().Str("address", cfg.Server.HTTPAddress).Msg("ops http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ops http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	// stop background jobs before the server so no new cycles start mid-shutdown
	jobs.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down ops http server")
	}

	log.Info().Msg("syncd stopped")
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
