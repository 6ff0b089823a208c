package main

import (
	"context"
	"fmt"

	"github.com/bookworm-social/bookworm-server/internal/adapter"
	"github.com/bookworm-social/bookworm-server/internal/config"
	httphandler "github.com/bookworm-social/bookworm-server/internal/handler/http"
	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/internal/server"
	"github.com/bookworm-social/bookworm-server/internal/service"
	"github.com/bookworm-social/bookworm-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bookworm-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	mediaStore, err := adapter.NewHTTPMediaAdapter(cfg.Media, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media store")
	}

	services := service.NewServices(repositories, mediaStore, cfg.App, log)

	handler := httphandler.NewHandler(services, repositories.UserRepository, log)

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
