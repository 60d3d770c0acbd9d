package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
	"github.com/MKhiriev/go-echo-feed/internal/config"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/service"
)

const usage = `usage: admin [flags] <command>

commands:
  state              print the running simulation
  view               print per-key progress of the running simulation
  defaults           print the default simulation parameters
  past               print past simulations
  create <file.json> start a simulation with the given parameters
  pause              pause the running simulation
  resume             resume a paused simulation
  end                end the running simulation`

var errUsage = errors.New(usage)

func main() {
	log := logger.NewLogger("echo-feed-admin")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	provider, err := adapter.NewHTTPAdminProvider(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create admin adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	admin := service.NewAdminService(provider, cfg.App.AdminKey, log)
	if err = run(ctx, admin, cfg.Args, os.ReadFile, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("admin command failed")
	}
}

func run(ctx context.Context, admin service.AdminService, args []string, readFile func(string) ([]byte, error), out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "state":
		state, err := admin.State(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, state)
	case "view":
		view, err := admin.View(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, view)
	case "defaults":
		params, err := admin.DefaultParameters(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, params)
	case "past":
		past, err := admin.PastSimulations(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, past)
	case "create":
		if len(args) < 2 {
			return errUsage
		}
		data, err := readFile(args[1])
		if err != nil {
			return fmt.Errorf("read parameters: %w", err)
		}
		if !json.Valid(data) {
			return fmt.Errorf("parameters file %s is not valid JSON", args[1])
		}
		return admin.Create(ctx, data)
	case "pause":
		return admin.Pause(ctx)
	case "resume":
		return admin.Resume(ctx)
	case "end":
		return admin.End(ctx)
	default:
		return errUsage
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
