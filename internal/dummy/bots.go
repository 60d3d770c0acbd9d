package dummy

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/service"
	"github.com/MKhiriev/go-echo-feed/internal/store"
	"github.com/MKhiriev/go-echo-feed/internal/workers"
	"github.com/MKhiriev/go-echo-feed/models"
)

// DefaultCount is the fleet size used when none is configured.
const DefaultCount = 24

// Options describes a pool of bots.
type Options struct {
	Count    int
	Behavior string
	Interval time.Duration
	Variant  models.Variant
	// Seed makes bot decisions reproducible. Zero means a random seed.
	Seed  uint64
	Clock clockwork.Clock
}

// NewBots builds opts.Count bots, each with its own engine and in-memory
// storages, so every bot asks the provider for a fresh key. The returned
// Workers runs them together.
func NewBots(provider adapter.RoundStateProvider, opts Options, log *logger.Logger) (*workers.Workers, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("bot count must be positive, got %d", opts.Count)
	}

	behavior, err := ParseBehavior(opts.Behavior)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	pool := workers.NewWorkers()
	for i := range opts.Count {
		name := fmt.Sprintf("bot-%02d", i+1)
		botLog := log.WithBot(name)

		engine := service.NewSyncEngine(provider, store.NewMemoryStorages(), service.EngineSettings{Variant: opts.Variant}, botLog,
			service.WithClock(clock),
			service.WithRand(rand.New(rand.NewPCG(seed, uint64(2*i)))),
		)
		rng := rand.New(rand.NewPCG(seed, uint64(2*i+1)))

		pool.Add(NewBot(name, engine, behavior, rng, clock, opts.Interval, botLog))
	}

	log.Info().Str("func", "dummy.NewBots").Int("count", opts.Count).Str("behavior", opts.Behavior).Msg("bots created")
	return pool, nil
}
