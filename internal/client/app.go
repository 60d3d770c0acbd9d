package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-echo-feed/internal/config"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/service"
	"github.com/MKhiriev/go-echo-feed/internal/store"
	"github.com/MKhiriev/go-echo-feed/internal/tui"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       Prompter
	storages *store.ClientStorages
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui Prompter, storages *store.ClientStorages, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, errors.New("client app: services, ui and config are required")
	}

	return &App{services: services, ui: ui, storages: storages, cfg: cfg, logger: logger}, nil
}

// Run establishes the session, starts polling and blocks in the round
// screen until the participant quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	key := a.cfg.App.APIKey
	if key == "" {
		var err error
		key, err = a.ui.KeyPrompt(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("key prompt: %w", err)
		}
	}

	session, err := a.services.Engine.Initialize(ctx, key)
	if err != nil {
		// поллер повторит инициализацию на следующем тике
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("session not established yet")
	} else {
		a.logger.Info().Str("func", "App.Run").Str("api_key", session.APIKey).Msg("session established")
	}

	a.services.PollJob.Start(ctx, a.cfg.Workers.PollInterval)
	defer a.services.PollJob.Stop()

	if err = a.ui.MainLoop(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("main loop: %w", err)
	}

	return nil
}

func (a *App) close() {
	a.services.Engine.Close()
	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("error closing storages")
	}
}
