package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultPollInterval is the cadence used when Start gets a non-positive
// interval.
const DefaultPollInterval = 500 * time.Millisecond

type pollJob struct {
	engine SyncEngine
	clock  clockwork.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPollJob creates a pollJob that calls engine.Tick on a ticker driven by
// clock. The job is idle until Start is called.
func NewPollJob(engine SyncEngine, clock clockwork.Clock) PollJob {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &pollJob{engine: engine, clock: clock}
}

// Start implements PollJob. It stops any previously running job, then
// launches a background goroutine that ticks the engine right away and every
// interval afterwards. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *pollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := j.clock.NewTicker(interval)
		defer t.Stop()

		j.engine.Tick(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
				j.engine.Tick(jobCtx)
			}
		}
	}()
}

// Stop implements PollJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *pollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
