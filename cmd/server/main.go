package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/handler"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/metrics"
	"github.com/MKhiriev/account-service/internal/server"
	"github.com/MKhiriev/account-service/internal/service"
	"github.com/MKhiriev/account-service/internal/store"
	"github.com/MKhiriev/account-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("account-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("account-server",
		logger.WithLevel(cfg.Log.Level),
		logger.WithFile(cfg.Log.File),
	)
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	m := metrics.New()
	if err = m.RegisterDB(db.DB, "accounts"); err != nil {
		log.Fatal().Err(err).Msg("error registering database metrics")
	}

	storages := store.NewStorages(db, log)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, db)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
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
