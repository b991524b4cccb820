package main

import (
	"context"
	"fmt"

	"github.com/nandervang/go-consult-base/internal/adapter"
	"github.com/nandervang/go-consult-base/internal/config"
	myHTTP "github.com/nandervang/go-consult-base/internal/handler/http"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/server"
	"github.com/nandervang/go-consult-base/internal/service"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/internal/validators"
	"github.com/nandervang/go-consult-base/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("consult-base-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	rates := adapter.NewExchangeRateAdapter(cfg.Rates, log)

	services, err := service.NewServices(storages, rates, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := myHTTP.NewHandler(services, validators.NewRequestValidator(), log)

	backgroundWorkers := workers.NewWorkers(services, cfg.Workers, log)
	backgroundWorkers.Run()
	defer backgroundWorkers.Stop()

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
