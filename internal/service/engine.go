// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/store"
	"github.com/MKhiriev/go-echo-feed/models"
)

const noticeBuffer = 16

// EngineSettings carries the configuration-driven parts of the engine.
type EngineSettings struct {
	// APIKey is tried once by the first Tick before recovering or
	// requesting a key.
	APIKey string
	// Variant selects allowed actions and the submit endpoint.
	Variant models.Variant
	// AllowResubmit permits a user-triggered resubmission after a failure
	// within the same step.
	AllowResubmit bool
}

// EngineOption customises a SyncEngine.
type EngineOption func(*syncEngine)

// WithClock replaces the wall clock used for timers and journal timestamps.
func WithClock(clock clockwork.Clock) EngineOption {
	return func(e *syncEngine) { e.clock = clock }
}

// WithRand replaces the source of issue presentation order.
func WithRand(rng *rand.Rand) EngineOption {
	return func(e *syncEngine) { e.rng = rng }
}

type syncEngine struct {
	provider    adapter.RoundStateProvider
	sessions    store.SessionRepository
	submissions store.SubmissionRepository

	logger        *logger.Logger
	clock         clockwork.Clock
	rng           *rand.Rand
	variant       models.Variant
	allowResubmit bool

	// tickMu serialises Tick so two sources cannot initialize concurrently.
	tickMu  sync.Mutex
	polling atomic.Bool
	submits sync.WaitGroup
	notices chan Notice

	mu          sync.Mutex
	seedKey     string
	session     models.Session
	invalid     bool
	initFailing bool

	snapshot     *models.RoundSnapshot
	lastSeenStep int
	issues       []models.Issue
	outDegree    int
	pending      pendingRound
}

// NewSyncEngine builds an engine over provider and the session/submission
// repositories of storages. The engine has no session until Initialize or
// the first Tick.
func NewSyncEngine(provider adapter.RoundStateProvider, storages *store.ClientStorages, settings EngineSettings, logger *logger.Logger, opts ...EngineOption) SyncEngine {
	variant := settings.Variant
	if variant.Endpoint == "" {
		variant = models.DefaultVariant()
	}

	e := &syncEngine{
		provider:      provider,
		sessions:      storages.SessionRepository,
		submissions:   storages.SubmissionRepository,
		logger:        logger,
		clock:         clockwork.NewRealClock(),
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		variant:       variant,
		allowResubmit: settings.AllowResubmit,
		notices:       make(chan Notice, noticeBuffer),
		seedKey:       strings.TrimSpace(settings.APIKey),
		lastSeenStep:  noStep,
		pending:       newPendingRound(noStep),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Initialize implements [SyncEngine].
func (e *syncEngine) Initialize(ctx context.Context, existingAPIKey string) (models.Session, error) {
	key := strings.TrimSpace(existingAPIKey)
	serverURL := e.provider.BaseURL()

	e.mu.Lock()
	if key != "" && key == e.seedKey {
		e.seedKey = ""
	}
	e.mu.Unlock()

	if key == "" {
		stored, err := e.sessions.GetSession(ctx, serverURL)
		switch {
		case err == nil:
			key = stored.APIKey
			e.logger.Debug().Str("func", "syncEngine.Initialize").Msg("recovered persisted session")
		case errors.Is(err, store.ErrLocalSessionNotFound):
		default:
			e.logger.Warn().Err(err).Str("func", "syncEngine.Initialize").Msg("failed to read persisted session")
		}
	}

	if key == "" {
		issued, err := e.provider.NewAPIKey(ctx)
		if err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrSession, mapAdapterError(err))
		}
		key = issued
		e.logger.Info().Str("func", "syncEngine.Initialize").Msg("provider issued a new api key")

		// a fresh key has not acted yet, whatever an earlier simulation left
		if err := e.submissions.DeleteSubmissions(ctx, key); err != nil {
			e.logger.Warn().Err(err).Str("func", "syncEngine.Initialize").Msg("failed to clear stale submission journal")
		}
	}

	now := e.clock.Now()
	session := models.Session{APIKey: key, ServerURL: serverURL, CreatedAt: now, UpdatedAt: now}
	if err := e.sessions.SaveSession(ctx, session); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.Initialize").Msg("failed to persist session")
	}

	lastSubmitted, err := e.submissions.LastSubmittedStep(ctx, key)
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.Initialize").Msg("failed to restore submission journal")
		lastSubmitted = noStep
	}

	e.mu.Lock()
	e.session = session
	e.invalid = false
	e.initFailing = false
	e.resetRoundLocked(lastSubmitted)
	e.mu.Unlock()

	e.logger.WithAPIKey(key).Info().
		Str("func", "syncEngine.Initialize").
		Int("last_submitted_step", lastSubmitted).
		Msg("session established")

	return session, nil
}

// resetRoundLocked drops every piece of round state tied to the previous
// session.
func (e *syncEngine) resetRoundLocked(lastSubmitted int) {
	e.snapshot = nil
	e.lastSeenStep = noStep
	e.issues = nil
	e.outDegree = 0
	e.pending = newPendingRound(lastSubmitted)
}

// Poll implements [SyncEngine].
func (e *syncEngine) Poll(ctx context.Context) (models.RoundSnapshot, error) {
	if !e.polling.CompareAndSwap(false, true) {
		return models.RoundSnapshot{}, ErrPollInFlight
	}
	defer e.polling.Store(false)

	key := e.apiKey()
	if key == "" {
		return models.RoundSnapshot{}, ErrNoSession
	}

	snapshot, err := e.provider.GetState(ctx, key)
	if errors.Is(err, adapter.ErrKeyNotFound) {
		e.invalidateSession(ctx, key)
		return models.RoundSnapshot{}, fmt.Errorf("%w: %w", ErrSession, ErrSessionInvalid)
	}
	if err != nil {
		return models.RoundSnapshot{}, fmt.Errorf("%w: %w", ErrTransient, err)
	}

	return snapshot, nil
}

// invalidateSession clears the session and everything derived from it, and
// removes it from local persistence. A session that was already replaced is
// left alone.
func (e *syncEngine) invalidateSession(ctx context.Context, key string) {
	e.mu.Lock()
	if e.session.APIKey != key {
		e.mu.Unlock()
		return
	}
	e.session = models.Session{}
	e.invalid = true
	e.resetRoundLocked(noStep)
	e.mu.Unlock()

	log := e.logger.WithAPIKey(key)
	log.Warn().Str("func", "syncEngine.invalidateSession").Msg("provider does not know the api key, session cleared")

	if err := e.sessions.DeleteSession(ctx, key); err != nil {
		log.Err(err).Str("func", "syncEngine.invalidateSession").Msg("failed to delete persisted session")
	}
	if err := e.submissions.DeleteSubmissions(ctx, key); err != nil {
		log.Err(err).Str("func", "syncEngine.invalidateSession").Msg("failed to clear submission journal")
	}

	e.notify(Notice{Kind: NoticeSessionInvalid, Step: noStep, Err: ErrSessionInvalid})
}

// Tick implements [SyncEngine].
func (e *syncEngine) Tick(ctx context.Context) {
	if !e.tickMu.TryLock() {
		return
	}
	defer e.tickMu.Unlock()

	if e.apiKey() == "" {
		if _, err := e.Initialize(ctx, e.takeSeedKey()); err != nil {
			e.reportInitFailure(err)
			return
		}
	}

	snapshot, err := e.Poll(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrTransient), errors.Is(err, ErrPollInFlight):
		e.logger.Debug().Err(err).Str("func", "syncEngine.Tick").Msg("poll skipped")
		return
	default:
		e.logger.Info().Err(err).Str("func", "syncEngine.Tick").Msg("poll failed")
		return
	}

	if err = e.Reconcile(ctx, snapshot); err != nil {
		e.logger.Debug().Err(err).Str("func", "syncEngine.Tick").Int("step", snapshot.Step).Msg("snapshot discarded")
	}
}

func (e *syncEngine) takeSeedKey() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := e.seedKey
	e.seedKey = ""
	return key
}

// reportInitFailure logs every failure but notifies only on the first one of
// a streak.
func (e *syncEngine) reportInitFailure(err error) {
	e.logger.Warn().Err(err).Str("func", "syncEngine.Tick").Msg("failed to establish session")

	e.mu.Lock()
	first := !e.initFailing
	e.initFailing = true
	e.mu.Unlock()

	if first {
		e.notify(Notice{Kind: NoticeSessionError, Step: noStep, Err: err})
	}
}

func (e *syncEngine) apiKey() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.APIKey
}

// Notices implements [SyncEngine].
func (e *syncEngine) Notices() <-chan Notice {
	return e.notices
}

func (e *syncEngine) notify(n Notice) {
	if n.At.IsZero() {
		n.At = e.clock.Now()
	}

	select {
	case e.notices <- n:
	default:
		e.logger.Debug().Str("func", "syncEngine.notify").Str("kind", n.Kind.String()).Msg("notice dropped")
	}
}

// Close implements [SyncEngine].
func (e *syncEngine) Close() {
	e.submits.Wait()
}
