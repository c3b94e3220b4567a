package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-journal-keeper/internal/app"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-journal-keeper/internal/handler/http"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/server"
	"github.com/MKhiriev/go-journal-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("journal-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	version := cfg.App.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	ctx := context.Background()
	application, err := app.NewApp(ctx, cfg.Client(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app")
	}

	if res := application.Holder.Hydrate(ctx); !res.Success {
		log.Warn().Str("error", res.Error).Msg("session check failed at startup")
	}

	handler := myHTTP.NewHandler(application.Holder, cfg.Server, version, log)
	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer()
	if runErr != nil {
		log.Err(runErr).Msg("server stopped")
	}

	if err = application.Close(ctx); err != nil {
		log.Err(err).Msg("error closing app")
	}

	if runErr != nil {
		os.Exit(1)
	}
}
