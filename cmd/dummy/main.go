package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
	"github.com/MKhiriev/go-echo-feed/internal/config"
	"github.com/MKhiriev/go-echo-feed/internal/dummy"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
)

func main() {
	log := logger.NewLogger("echo-feed-dummy")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	provider, err := adapter.NewHTTPRoundStateProvider(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create provider adapter")
	}

	count := cfg.Workers.Bots
	if count == 0 {
		count = dummy.DefaultCount
	}

	bots, err := dummy.NewBots(provider, dummy.Options{
		Count:    count,
		Behavior: cfg.Workers.BotBehavior,
		Interval: cfg.Workers.PollInterval,
		Variant:  cfg.App.Variant,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create bots")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Int("bots", count).Str("provider", provider.BaseURL()).Msg("dummy participants started")
	if err = bots.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("dummy run error")
	}
	log.Info().Msg("dummy participants stopped")
}
