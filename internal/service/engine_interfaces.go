package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-echo-feed/models"
)

// SyncEngine defines the client state synchronisation protocol. It
// reconciles repeatedly refetched, possibly partial round snapshots with
// the participant's pending input, and submits that input at most once per
// step.
//
// All methods are safe for concurrent use: the poll job and the UI event
// loop call into the same engine.
type SyncEngine interface {
	// Initialize establishes the session. existingAPIKey is used when
	// non-empty; otherwise the key persisted for the current provider is
	// recovered; otherwise a fresh key is requested. The last submitted step
	// for the key is restored from the submission journal.
	// Returns an error wrapping [ErrSession] when no key can be obtained.
	Initialize(ctx context.Context, existingAPIKey string) (models.Session, error)

	// Poll fetches the current snapshot. At most one poll is in flight;
	// an overlapping call returns [ErrPollInFlight] without a request.
	// An unknown key invalidates the session and returns [ErrSessionInvalid];
	// network and decoding failures return [ErrTransient] without mutating
	// any state.
	Poll(ctx context.Context) (models.RoundSnapshot, error)

	// Reconcile applies snapshot to the engine state: it discards stale or
	// schema-contradicting snapshots, allocates the pending vectors on first
	// sight of the schema, resets round input on step advance, submits once
	// when ready, and projects the aggregates.
	Reconcile(ctx context.Context, snapshot models.RoundSnapshot) error

	// SubmitActions performs exactly one provider call with the given
	// belief vector and per-slot actions. Provider-reported failures are
	// returned wrapped in [ErrSubmission]; nothing is retried.
	SubmitActions(ctx context.Context, belief []int, actions []models.Action) error

	// Tick runs one poll cycle: initialize when there is no session, poll,
	// reconcile. Errors are logged and published as notices, never returned.
	Tick(ctx context.Context)

	// View returns an immutable projection of the engine state.
	View() models.RoundView

	// SetBelief sets the belief value of one issue to pole (-1 or +1).
	SetBelief(issue, pole int) error
	// SetBeliefVector replaces the whole belief vector.
	SetBeliefVector(belief []int) error
	// FlipBelief switches one issue to its opposite pole.
	FlipBelief(issue int) error
	// SetAction sets the action of one feed slot.
	SetAction(slot int, action models.Action) error
	// CycleAction advances one feed slot to the next action the variant
	// allows.
	CycleAction(slot int) error
	// SetReady marks the round input ready (or not). Setting ready again
	// after a failed submission in the same step re-arms one submission
	// when resubmission is allowed.
	SetReady(ready bool) error
	// ToggleReady flips the ready flag via SetReady.
	ToggleReady() error

	// Notices delivers user-visible events (failed submissions, session
	// loss). Events are dropped when nobody reads them.
	Notices() <-chan Notice

	// Close waits for in-flight submissions to finish.
	Close()
}

// PollJob defines the contract for the background worker that ticks the
// engine on a fixed cadence.
type PollJob interface {
	// Start ticks the engine immediately and then every interval,
	// defaulting to 500ms if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// AdminService defines the operator operations exposed by cmd/admin.
type AdminService interface {
	State(ctx context.Context) (models.SimulationState, error)
	View(ctx context.Context) (json.RawMessage, error)
	DefaultParameters(ctx context.Context) (json.RawMessage, error)
	PastSimulations(ctx context.Context) (json.RawMessage, error)
	Create(ctx context.Context, params json.RawMessage) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	End(ctx context.Context) error
}
