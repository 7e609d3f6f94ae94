package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"fenix_office/internal/adapters/localcache"
	"fenix_office/internal/config"
	"fenix_office/internal/handlers"
	"fenix_office/internal/logger"
	"fenix_office/internal/repository"
	"fenix_office/internal/repository/activity"
	"fenix_office/internal/repository/database"
	"fenix_office/internal/server"
	"fenix_office/internal/services/ledger"
	"fenix_office/internal/services/reports"
	"fenix_office/internal/services/sync"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("logger setup failed")
	}

	if err := cfg.CheckConnections(setupCtx); err != nil {
		log.Fatal().Err(err).Msg("connection check failed")
	}
	log.Info().Msg("all connections OK")

	store := database.NewStore(cfg.Postgres)
	cache := localcache.NewPayableCache(cfg.CacheDir)
	audit := activity.NewRepo(cfg.Mongo)
	tokens := repository.NewPersonalAccessTokenRepository(cfg.Postgres)

	state := sync.New(store, cache, cfg.SyncInterval)
	if err := state.Start(runCtx); err != nil {
		log.Warn().Err(err).Msg("initial sync failed, serving once a cycle succeeds")
	}
	defer state.Stop()

	ledgerSvc := ledger.New(store, cache, state, audit)
	exporter := reports.NewExporter(cfg.S3, state)

	h := handlers.New(state, ledgerSvc, exporter)
	srv := server.NewServer(cfg.Port, h, tokens)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := srv.Run(runCtx); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
