package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
	"github.com/MKhiriev/go-echo-feed/internal/client"
	"github.com/MKhiriev/go-echo-feed/internal/config"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/service"
	"github.com/MKhiriev/go-echo-feed/internal/store"
	"github.com/MKhiriev/go-echo-feed/internal/tui"
	"github.com/MKhiriev/go-echo-feed/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("echo-feed-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("echo-feed-client", cfg.App.LogFile)

	provider, err := adapter.NewHTTPRoundStateProvider(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create provider adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(provider, storages, service.EngineSettings{
		APIKey:        cfg.App.APIKey,
		Variant:       cfg.App.Variant,
		AllowResubmit: cfg.App.AllowResubmit,
	}, nil, log)

	ui := tui.New(services, buildInfo, log)

	app, err := client.NewApp(services, ui, storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
