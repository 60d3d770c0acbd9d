// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-echo-feed binaries. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables (optionally
// seeded from a .env file), command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds participant-level settings: keys, variant and resubmission
	// policy.
	App App `envPrefix:"APP_"`

	// Adapter holds the Round State Provider address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session/submission database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the poll cadence and the dummy-bot fleet settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args are the positional command-line arguments left after flags
	// (the admin CLI reads its command from them).
	Args []string
}

// App holds participant-level configuration.
type App struct {
	// APIKey is an API key to resume instead of asking the provider for a
	// new one.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// AdminKey is the operator key used by the admin CLI.
	// Env: APP_ADMIN_KEY
	AdminKey string `env:"ADMIN_KEY"`

	// VariantFile is the path to a YAML variant description. Empty selects
	// the default follow/unfollow variant.
	// Env: APP_VARIANT_FILE
	VariantFile string `env:"VARIANT_FILE"`

	// AllowResubmit controls whether a failed submission may be re-sent
	// within the same step after the participant re-toggles ready.
	// Kept as text ("true"/"false") so an explicit false survives merging.
	// Env: APP_ALLOW_RESUBMIT
	AllowResubmit string `env:"ALLOW_RESUBMIT"`

	// LogFile overrides the log destination of interactive binaries.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the outbound provider transport.
type Adapter struct {
	// HTTPAddress is the provider address, "host:port" or a full URL
	// (e.g. "localhost:5000", "https://sim.example.org").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single provider request
	// (e.g. "5s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source (file path or "file:..." URI).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PollInterval is the cadence of GET /state polling (default 500ms).
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// Bots is the number of dummy participants cmd/dummy starts.
	// Env: WORKERS_BOTS
	Bots int `env:"BOTS"`

	// BotBehavior names the belief strategy of dummy participants
	// ("random", "zero-intelligence", "zero-intelligence-unweighted").
	// Env: WORKERS_BOT_BEHAVIOR
	BotBehavior string `env:"BOT_BEHAVIOR"`
}

// Built-in defaults, applied before every other source.
const (
	DefaultProviderAddress = "localhost:5000"
	DefaultRequestTimeout  = 5 * time.Second
	DefaultPollInterval    = 500 * time.Millisecond
	DefaultDSN             = "echo-feed.db"
	DefaultBotBehavior     = "zero-intelligence"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{AllowResubmit: "true"},
		Adapter: Adapter{
			HTTPAddress:    DefaultProviderAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{
			PollInterval: DefaultPollInterval,
			BotBehavior:  DefaultBotBehavior,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (a .env file is loaded into the environment
//     first, see [DotEnvVar])
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
