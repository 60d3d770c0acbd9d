package dummy

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/service"
	"github.com/MKhiriev/go-echo-feed/models"
)

// DefaultInterval is the bot cadence: poll, decide, mark ready.
const DefaultInterval = 500 * time.Millisecond

// Bot is one automated participant. It implements workers.Worker.
type Bot struct {
	name     string
	engine   service.SyncEngine
	behavior Behavior
	rng      *rand.Rand
	clock    clockwork.Clock
	interval time.Duration
	logger   *logger.Logger
}

// NewBot creates a bot over engine. A nil clock means the wall clock and a
// non-positive interval means DefaultInterval.
func NewBot(name string, engine service.SyncEngine, behavior Behavior, rng *rand.Rand, clock clockwork.Clock, interval time.Duration, logger *logger.Logger) *Bot {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Bot{
		name:     name,
		engine:   engine,
		behavior: behavior,
		rng:      rng,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

func (b *Bot) Name() string {
	return b.name
}

// Run plays until ctx is cancelled, then waits for in-flight submissions.
func (b *Bot) Run(ctx context.Context) error {
	defer b.engine.Close()

	t := b.clock.NewTicker(b.interval)
	defer t.Stop()

	b.logger.Info().Str("func", "Bot.Run").Msg("bot started")
	for {
		b.step(ctx)

		select {
		case <-ctx.Done():
			b.logger.Info().Str("func", "Bot.Run").Msg("bot stopped")
			return nil
		case <-t.Chan():
		}
	}
}

func (b *Bot) step(ctx context.Context) {
	b.engine.Tick(ctx)
	b.drainNotices()
	b.act()
}

// act chooses and readies the input for the current step once per step.
// It reports whether the bot changed its input.
func (b *Bot) act() bool {
	view := b.engine.View()
	if view.Phase != models.PhaseCollecting || view.Step < 0 || len(view.Belief) == 0 {
		return false
	}

	belief := b.behavior(view, b.rng)
	if err := b.engine.SetBeliefVector(belief); err != nil {
		b.logger.Warn().Err(err).Str("func", "Bot.act").Int("step", view.Step).Msg("behavior produced invalid belief")
		return false
	}
	if err := b.engine.SetReady(true); err != nil {
		b.logger.Warn().Err(err).Str("func", "Bot.act").Int("step", view.Step).Msg("failed to mark ready")
		return false
	}

	b.logger.Debug().Str("func", "Bot.act").Int("step", view.Step).Ints("belief", belief).Msg("ready")
	return true
}

func (b *Bot) drainNotices() {
	for {
		select {
		case n := <-b.engine.Notices():
			ev := b.logger.Info()
			if n.Err != nil {
				ev = b.logger.Warn().Err(n.Err)
			}
			ev.Str("func", "Bot.drainNotices").Int("step", n.Step).Msg(n.Kind.String())
		default:
			return
		}
	}
}
