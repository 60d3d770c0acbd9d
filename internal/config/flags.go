package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args (without the program
// name). Unknown flags are reported as an error instead of exiting.
//
// Flags:
//
//	-a provider address, host:port or URL
//	-k api key to resume
//	-admin-key operator key
//	-variant variant YAML file
//	-allow-resubmit true|false
//	-d database DSN
//	-log-file log file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "5s")
//	-poll-interval poll cadence (e.g., "500ms")
//	-bots number of dummy participants
//	-bot-behavior dummy belief strategy
func ParseFlags(args []string) (*StructuredConfig, error) {
	var providerAddress string
	var apiKey, adminKey string
	var variantFile string
	var allowResubmit string
	var databaseDSN string
	var logFile string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var bots int
	var botBehavior string

	fs := flag.NewFlagSet("go-echo-feed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&providerAddress, "a", "", "Provider address host:port or URL")
	fs.StringVar(&apiKey, "k", "", "API key to resume")
	fs.StringVar(&adminKey, "admin-key", "", "Admin key")
	fs.StringVar(&variantFile, "variant", "", "Variant YAML file")
	fs.StringVar(&allowResubmit, "allow-resubmit", "", "Allow resubmission after a failed submit (true|false)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Poll interval (e.g., 500ms)")
	fs.IntVar(&bots, "bots", 0, "Number of dummy participants")
	fs.StringVar(&botBehavior, "bot-behavior", "", "Dummy belief strategy")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIKey:        apiKey,
			AdminKey:      adminKey,
			VariantFile:   variantFile,
			AllowResubmit: allowResubmit,
			LogFile:       logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    providerAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			PollInterval: pollInterval,
			Bots:         bots,
			BotBehavior:  botBehavior,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}
