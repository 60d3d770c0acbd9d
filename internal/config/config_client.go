package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-echo-feed/models"
)

// ClientApp holds participant-side application settings derived from the
// shared structured config.
type ClientApp struct {
	// APIKey is the key to resume, empty to recover or request one.
	APIKey string
	// AdminKey is the operator key for the admin CLI.
	AdminKey string
	// AllowResubmit permits one user-triggered resubmission per failed step.
	AllowResubmit bool
	// Variant is the loaded variant description.
	Variant models.Variant
	// LogFile overrides the log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the provider address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval defines how often the poll job ticks the engine.
	PollInterval time.Duration
	// Bots is the dummy fleet size.
	Bots int
	// BotBehavior is the dummy belief strategy name.
	BotBehavior string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the provider address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Args are the positional command-line arguments.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig] using args as the
// command line, resolves the variant file via [LoadVariant], maps only the
// fields relevant to the client runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	allowResubmit, err := parseToggle(cfg.App.AllowResubmit, true)
	if err != nil {
		return nil, fmt.Errorf("%w: allow resubmit: %v", ErrInvalidAppConfigs, err)
	}

	variant, err := LoadVariant(cfg.App.VariantFile)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			APIKey:        cfg.App.APIKey,
			AdminKey:      cfg.App.AdminKey,
			AllowResubmit: allowResubmit,
			Variant:       variant,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			PollInterval: cfg.Workers.PollInterval,
			Bots:         cfg.Workers.Bots,
			BotBehavior:  cfg.Workers.BotBehavior,
		},
		Args: cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}

func parseToggle(raw string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}
