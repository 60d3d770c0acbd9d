// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/mock"
	"github.com/MKhiriev/go-echo-feed/internal/store"
	"github.com/MKhiriev/go-echo-feed/models"
)

const testServerURL = "http://provider.test"

// fakeClock: то, что нужно тестам от clockwork fake clock
type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
	BlockUntilContext(ctx context.Context, n int) error
}

type engineFixture struct {
	engine   *syncEngine
	provider *mock.MockRoundStateProvider
	storages *store.ClientStorages
	clock    fakeClock
}

func newEngineFixture(t *testing.T, settings EngineSettings) *engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	provider := mock.NewMockRoundStateProvider(ctrl)
	provider.EXPECT().BaseURL().Return(testServerURL).AnyTimes()

	if settings.Variant.Endpoint == "" {
		settings.Variant = models.DefaultVariant()
	}

	storages := store.NewMemoryStorages()
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))

	e := NewSyncEngine(provider, storages, settings, logger.Nop(),
		WithClock(clock),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	).(*syncEngine)
	t.Cleanup(e.Close)

	return &engineFixture{engine: e, provider: provider, storages: storages, clock: clock}
}

// establish поднимает сессию с ключом key без обращения к провайдеру
func (f *engineFixture) establish(t *testing.T, key string) {
	t.Helper()
	_, err := f.engine.Initialize(context.Background(), key)
	require.NoError(t, err)
}

func schemaSnapshot(step int) models.RoundSnapshot {
	return models.RoundSnapshot{
		Step:      step,
		Issues:    []models.Issue{{"red", "blue"}, {"cat", "dog"}},
		OutDegree: 3,
		Messages: []models.FeedMessage{
			{User: "u1", Post: []int{1, 1}, Metric: 3, MetricName: models.MetricFollowers},
			{User: "u2", Post: []int{-1, 1}, Metric: 1, MetricName: models.MetricFollowers},
			{User: "u3", Post: []int{-1, -1}, Metric: 0, MetricName: models.MetricFollowers},
		},
		Likes:      2,
		ReadyCount: 1,
		Size:       4,
	}
}

func drainNotice(t *testing.T, e *syncEngine) Notice {
	t.Helper()
	select {
	case n := <-e.Notices():
		return n
	default:
		t.Fatal("expected a notice")
		return Notice{}
	}
}

// ── Initialize ──────────────────────────────────────────────────────────────

func TestInitialize_UsesSuppliedKey(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})

	session, err := f.engine.Initialize(context.Background(), "  given  ")
	require.NoError(t, err)
	assert.Equal(t, "given", session.APIKey)
	assert.Equal(t, testServerURL, session.ServerURL)

	stored, err := f.storages.SessionRepository.GetSession(context.Background(), testServerURL)
	require.NoError(t, err)
	assert.Equal(t, "given", stored.APIKey)
}

func TestInitialize_RecoversPersistedKey(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	require.NoError(t, f.storages.SessionRepository.SaveSession(context.Background(),
		models.Session{APIKey: "persisted", ServerURL: testServerURL}))

	session, err := f.engine.Initialize(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "persisted", session.APIKey)
}

func TestInitialize_RequestsNewKeyThenPollsIt(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	ctx := context.Background()

	gomock.InOrder(
		f.provider.EXPECT().NewAPIKey(gomock.Any()).Return("abc", nil),
		f.provider.EXPECT().GetState(gomock.Any(), "abc").Return(schemaSnapshot(1), nil),
	)

	session, err := f.engine.Initialize(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "abc", session.APIKey)

	_, err = f.engine.Poll(ctx)
	require.NoError(t, err)
}

func TestInitialize_IssuanceFailure(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.provider.EXPECT().NewAPIKey(gomock.Any()).Return("", adapter.ErrNoAPIKeyAvailable)

	_, err := f.engine.Initialize(context.Background(), "")
	assert.ErrorIs(t, err, ErrSession)
	assert.ErrorIs(t, err, ErrNoAPIKeyAvailable)
	assert.Empty(t, f.engine.View().APIKey)
}

func TestInitialize_RestoresLastSubmittedStep(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	ctx := context.Background()
	require.NoError(t, f.storages.SubmissionRepository.SaveSubmission(ctx, models.Submission{APIKey: "abc", Step: 5}))

	f.establish(t, "abc")
	f.provider.EXPECT().SendActions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(5)))
	require.NoError(t, f.engine.SetReady(true))
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(5)))
	f.engine.Close()

	view := f.engine.View()
	assert.Equal(t, 5, view.LastSubmittedStep)
	assert.Equal(t, models.PhaseSubmitted, view.Phase)
}

func TestInitialize_ReissuedKeyIgnoresOldJournal(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	ctx := context.Background()
	// журнал от прошлой симуляции, где ключ "abc" дошёл до шага 3
	require.NoError(t, f.storages.SubmissionRepository.SaveSubmission(ctx, models.Submission{APIKey: "abc", Step: 3}))

	f.provider.EXPECT().NewAPIKey(gomock.Any()).Return("abc", nil)
	_, err := f.engine.Initialize(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, -1, f.engine.View().LastSubmittedStep)

	f.provider.EXPECT().SendActions(gomock.Any(), "abc", gomock.Any()).Return(nil).Times(1)
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(3)))
	require.NoError(t, f.engine.SetReady(true))
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(3)))
	f.engine.Close()

	assert.Equal(t, 3, f.engine.View().LastSubmittedStep)
}

func TestPoll_KeyNotFoundClearsJournal(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	ctx := context.Background()
	require.NoError(t, f.storages.SubmissionRepository.SaveSubmission(ctx, models.Submission{APIKey: "abc", Step: 4}))
	f.establish(t, "abc")

	f.provider.EXPECT().GetState(gomock.Any(), "abc").Return(models.RoundSnapshot{}, adapter.ErrKeyNotFound)
	_, err := f.engine.Poll(ctx)
	require.ErrorIs(t, err, ErrSessionInvalid)

	step, err := f.storages.SubmissionRepository.LastSubmittedStep(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, -1, step)
}

// ── Reconcile ───────────────────────────────────────────────────────────────

func TestReconcile_AllocatesSchema(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")

	require.NoError(t, f.engine.Reconcile(context.Background(), schemaSnapshot(1)))

	view := f.engine.View()
	require.Len(t, view.Belief, 2)
	require.Len(t, view.Swapped, 2)
	for i, pole := range view.Belief {
		assert.Contains(t, []int{-1, 1}, pole)
		// по умолчанию выбран полюс, показанный первым
		assert.Equal(t, firstPresentedPole(view.Swapped[i]), pole)
	}
	require.Len(t, view.Actions, 3)
	for _, a := range view.Actions {
		assert.Equal(t, models.ActionNone, a)
	}
	assert.Len(t, view.Feed, 3)
	assert.Equal(t, 1, view.Step)
}

func TestReconcile_PartialSnapshotKeepsSchemaAndFeed(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	ctx := context.Background()

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(1)))
	require.NoError(t, f.engine.Reconcile(ctx, models.RoundSnapshot{Step: 1, Likes: 9}))

	view := f.engine.View()
	assert.Len(t, view.Issues, 2)
	assert.Equal(t, 3, view.OutDegree)
	assert.Len(t, view.Feed, 3)
	assert.Equal(t, 9, view.Likes)
}

func TestReconcile_StepAdvanceResetsActionsAndReady(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	ctx := context.Background()

	f.provider.EXPECT().SendActions(gomock.Any(), "abc", gomock.Any()).Return(nil).Times(1)

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(5)))
	require.NoError(t, f.engine.SetBeliefVector([]int{1, -1}))
	require.NoError(t, f.engine.SetAction(1, models.ActionFollow))
	require.NoError(t, f.engine.SetReady(true))
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(5)))
	f.engine.Close()

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(6)))

	view := f.engine.View()
	assert.Equal(t, []int{1, -1}, view.Belief)
	assert.Equal(t, []models.Action{models.ActionNone, models.ActionNone, models.ActionNone}, view.Actions)
	assert.False(t, view.Ready)
	assert.Equal(t, models.PhaseCollecting, view.Phase)
}

func TestReconcile_SubmitsOncePerStep(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	ctx := context.Background()

	var sent models.ActionSet
	f.provider.EXPECT().SendActions(gomock.Any(), "abc", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, set models.ActionSet) error {
			sent = set
			return nil
		}).Times(1)

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(5)))
	require.NoError(t, f.engine.SetBeliefVector([]int{1, -1}))
	require.NoError(t, f.engine.SetAction(2, models.ActionUnfollow))
	require.NoError(t, f.engine.SetReady(true))

	for range 5 {
		require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(5)))
	}
	f.engine.Close()

	assert.Equal(t, []int{1, -1}, sent.Message)
	assert.Equal(t, []int{0, 0, -1}, sent.Follows)

	view := f.engine.View()
	assert.Equal(t, models.PhaseSubmitted, view.Phase)
	assert.Equal(t, 5, view.LastSubmittedStep)
	assert.Equal(t, NoticeSubmitted, drainNotice(t, f.engine).Kind)

	step, err := f.storages.SubmissionRepository.LastSubmittedStep(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 5, step)
}

func TestReconcile_NotReadyDoesNotSubmit(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	f.provider.EXPECT().SendActions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.engine.Reconcile(context.Background(), schemaSnapshot(5)))
	require.NoError(t, f.engine.Reconcile(context.Background(), schemaSnapshot(5)))
	f.engine.Close()
}

func TestReconcile_StaleSnapshotNoMutation(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	ctx := context.Background()

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(6)))
	require.NoError(t, f.engine.SetAction(0, models.ActionFollow))
	before := f.engine.View()

	stale := schemaSnapshot(5)
	stale.Likes = 100
	err := f.engine.Reconcile(ctx, stale)
	assert.ErrorIs(t, err, ErrStaleSnapshot)

	assert.Equal(t, before, f.engine.View())
}

func TestReconcile_SchemaMismatchNoMutation(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	ctx := context.Background()

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(1)))
	before := f.engine.View()

	wider := schemaSnapshot(2)
	wider.OutDegree = 4
	assert.ErrorIs(t, f.engine.Reconcile(ctx, wider), ErrSchemaMismatch)

	fewer := schemaSnapshot(2)
	fewer.Issues = fewer.Issues[:1]
	assert.ErrorIs(t, f.engine.Reconcile(ctx, fewer), ErrSchemaMismatch)

	assert.Equal(t, before, f.engine.View())
}

func TestReconcile_WithoutSession(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	assert.ErrorIs(t, f.engine.Reconcile(context.Background(), schemaSnapshot(1)), ErrNoSession)
}

func TestReconcile_MessageVariantUsesSendMessage(t *testing.T) {
	variant := models.Variant{Name: "message", MetricColumn: models.MetricViews, Endpoint: models.EndpointMessage}
	f := newEngineFixture(t, EngineSettings{Variant: variant})
	f.establish(t, "abc")
	ctx := context.Background()

	f.provider.EXPECT().SendMessage(gomock.Any(), "abc", []int{-1, 1}).Return(nil).Times(1)

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(3)))
	require.NoError(t, f.engine.SetBeliefVector([]int{-1, 1}))
	require.NoError(t, f.engine.SetReady(true))
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(3)))
	f.engine.Close()
}

// ── submission failures ─────────────────────────────────────────────────────

func TestSubmissionFailure_SurfacedAndNotRetried(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{AllowResubmit: true})
	f.establish(t, "abc")
	ctx := context.Background()

	f.provider.EXPECT().SendActions(gomock.Any(), "abc", gomock.Any()).
		Return(errors.Join(adapter.ErrServerRejected, errors.New("roundClosed"))).Times(1)

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	require.NoError(t, f.engine.SetReady(true))
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	f.engine.Close()

	// повторные поллы того же шага не отправляют заново
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	f.engine.Close()

	view := f.engine.View()
	assert.True(t, view.SubmitFailed)
	assert.True(t, view.Ready, "local state is not rolled back")

	n := drainNotice(t, f.engine)
	assert.Equal(t, NoticeSubmissionFailed, n.Kind)
	assert.Equal(t, 4, n.Step)
	assert.ErrorIs(t, n.Err, ErrSubmission)
	assert.ErrorIs(t, n.Err, ErrRejectedByProvider)
}

func TestSubmissionFailure_ExplicitRetrigger(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{AllowResubmit: true})
	f.establish(t, "abc")
	ctx := context.Background()

	gomock.InOrder(
		f.provider.EXPECT().SendActions(gomock.Any(), "abc", gomock.Any()).Return(adapter.ErrBadGateway),
		f.provider.EXPECT().SendActions(gomock.Any(), "abc", gomock.Any()).Return(nil),
	)

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	require.NoError(t, f.engine.SetReady(true))
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	f.engine.Close()

	require.NoError(t, f.engine.SetReady(false))
	require.NoError(t, f.engine.SetReady(true))
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	f.engine.Close()

	view := f.engine.View()
	assert.False(t, view.SubmitFailed)
	assert.Equal(t, models.PhaseSubmitted, view.Phase)
}

func TestSubmissionFailure_ResubmitDisallowed(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{AllowResubmit: false})
	f.establish(t, "abc")
	ctx := context.Background()

	f.provider.EXPECT().SendActions(gomock.Any(), "abc", gomock.Any()).Return(adapter.ErrBadGateway).Times(1)

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	require.NoError(t, f.engine.SetReady(true))
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	f.engine.Close()

	require.NoError(t, f.engine.ToggleReady())
	require.NoError(t, f.engine.ToggleReady())
	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(4)))
	f.engine.Close()
}

func TestSubmitActions_NoSession(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	assert.ErrorIs(t, f.engine.SubmitActions(context.Background(), []int{1}, nil), ErrNoSession)
}

// ── Poll ────────────────────────────────────────────────────────────────────

func TestPoll_NoSession(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	_, err := f.engine.Poll(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestPoll_TransientNoMutation(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	ctx := context.Background()

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(2)))
	before := f.engine.View()

	f.provider.EXPECT().GetState(gomock.Any(), "abc").Return(models.RoundSnapshot{}, adapter.ErrMalformedResponse)

	_, err := f.engine.Poll(ctx)
	assert.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, before, f.engine.View())
}

func TestPoll_KeyNotFoundClearsSession(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	ctx := context.Background()

	require.NoError(t, f.engine.Reconcile(ctx, schemaSnapshot(2)))
	f.provider.EXPECT().GetState(gomock.Any(), "abc").Return(models.RoundSnapshot{}, adapter.ErrKeyNotFound)

	_, err := f.engine.Poll(ctx)
	assert.ErrorIs(t, err, ErrSessionInvalid)
	assert.ErrorIs(t, err, ErrSession)

	view := f.engine.View()
	assert.Empty(t, view.APIKey)
	assert.Equal(t, models.PhaseInvalid, view.Phase)
	assert.Empty(t, view.Feed)
	assert.Equal(t, -1, view.Step)

	_, err = f.storages.SessionRepository.GetSession(ctx, testServerURL)
	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
	assert.Equal(t, NoticeSessionInvalid, drainNotice(t, f.engine).Kind)

	// следующий тик заново инициализирует сессию
	gomock.InOrder(
		f.provider.EXPECT().NewAPIKey(gomock.Any()).Return("fresh", nil),
		f.provider.EXPECT().GetState(gomock.Any(), "fresh").Return(schemaSnapshot(2), nil),
	)
	f.engine.Tick(ctx)

	view = f.engine.View()
	assert.Equal(t, "fresh", view.APIKey)
	assert.Equal(t, models.PhaseCollecting, view.Phase)
}

func TestPoll_OverlappingCallSkipped(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.provider.EXPECT().GetState(gomock.Any(), "abc").
		DoAndReturn(func(context.Context, string) (models.RoundSnapshot, error) {
			close(entered)
			<-release
			return schemaSnapshot(1), nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := f.engine.Poll(ctx)
		done <- err
	}()

	<-entered
	_, err := f.engine.Poll(ctx)
	assert.ErrorIs(t, err, ErrPollInFlight)

	close(release)
	assert.NoError(t, <-done)
}

// ── Tick ────────────────────────────────────────────────────────────────────

func TestTick_SeedKeyUsedOnce(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{APIKey: "seed"})
	ctx := context.Background()

	gomock.InOrder(
		f.provider.EXPECT().GetState(gomock.Any(), "seed").Return(models.RoundSnapshot{}, adapter.ErrKeyNotFound),
		f.provider.EXPECT().NewAPIKey(gomock.Any()).Return("issued", nil),
		f.provider.EXPECT().GetState(gomock.Any(), "issued").Return(schemaSnapshot(1), nil),
	)

	f.engine.Tick(ctx)
	f.engine.Tick(ctx)

	assert.Equal(t, "issued", f.engine.View().APIKey)
}

func TestTick_ConfiguredKeyNotRetriedAfterDirectInitialize(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{APIKey: "cfg"})
	f.establish(t, "cfg")
	ctx := context.Background()

	// ключ отозван: повторно с ним не инициализируемся, сразу берём новый
	gomock.InOrder(
		f.provider.EXPECT().GetState(gomock.Any(), "cfg").Return(models.RoundSnapshot{}, adapter.ErrKeyNotFound).Times(1),
		f.provider.EXPECT().NewAPIKey(gomock.Any()).Return("new", nil),
		f.provider.EXPECT().GetState(gomock.Any(), "new").Return(schemaSnapshot(1), nil),
	)

	f.engine.Tick(ctx)
	f.engine.Tick(ctx)

	assert.Equal(t, "new", f.engine.View().APIKey)
	assert.Equal(t, NoticeSessionInvalid, drainNotice(t, f.engine).Kind)
	select {
	case extra := <-f.engine.Notices():
		t.Fatalf("unexpected notice %v", extra.Kind)
	default:
	}
}

func TestTick_InitFailureNotifiesOnce(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	ctx := context.Background()

	f.provider.EXPECT().NewAPIKey(gomock.Any()).Return("", adapter.ErrNoAPIKeyAvailable).Times(3)

	f.engine.Tick(ctx)
	f.engine.Tick(ctx)
	f.engine.Tick(ctx)

	n := drainNotice(t, f.engine)
	assert.Equal(t, NoticeSessionError, n.Kind)
	assert.ErrorIs(t, n.Err, ErrSession)
	select {
	case extra := <-f.engine.Notices():
		t.Fatalf("unexpected notice %v", extra.Kind)
	default:
	}
}

func TestTick_TransientErrorIsSwallowed(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{APIKey: "abc"})
	f.provider.EXPECT().GetState(gomock.Any(), "abc").Return(models.RoundSnapshot{}, adapter.ErrBadGateway)

	assert.NotPanics(t, func() { f.engine.Tick(context.Background()) })
	assert.Equal(t, "abc", f.engine.View().APIKey)
}

// ── input handlers ──────────────────────────────────────────────────────────

func TestInputHandlers_BeforeSchema(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")

	assert.ErrorIs(t, f.engine.SetBelief(0, 1), ErrInvalidInput)
	assert.ErrorIs(t, f.engine.SetBeliefVector([]int{1}), ErrInvalidInput)
	assert.ErrorIs(t, f.engine.SetAction(0, models.ActionFollow), ErrInvalidInput)
	assert.ErrorIs(t, f.engine.SetReady(true), ErrInvalidInput)
}

func TestInputHandlers_Validation(t *testing.T) {
	variant := models.Variant{Name: "likes", MetricColumn: models.MetricLikes, Actions: []models.Action{models.ActionFollow}, Endpoint: models.EndpointActions}
	f := newEngineFixture(t, EngineSettings{Variant: variant})
	f.establish(t, "abc")
	require.NoError(t, f.engine.Reconcile(context.Background(), schemaSnapshot(1)))

	assert.ErrorIs(t, f.engine.SetBelief(2, 1), ErrInvalidInput)
	assert.ErrorIs(t, f.engine.SetBelief(0, 0), ErrInvalidInput)
	assert.ErrorIs(t, f.engine.SetBeliefVector([]int{1, 2}), ErrInvalidInput)
	assert.ErrorIs(t, f.engine.SetBeliefVector([]int{1}), ErrInvalidInput)
	assert.ErrorIs(t, f.engine.SetAction(3, models.ActionFollow), ErrInvalidInput)
	assert.ErrorIs(t, f.engine.SetAction(0, models.ActionUnfollow), ErrInvalidInput)

	require.NoError(t, f.engine.SetBelief(0, 1))
	require.NoError(t, f.engine.FlipBelief(0))
	require.NoError(t, f.engine.CycleAction(1))
	require.NoError(t, f.engine.CycleAction(2))
	require.NoError(t, f.engine.CycleAction(2))

	view := f.engine.View()
	assert.Equal(t, -1, view.Belief[0])
	assert.Equal(t, []models.Action{models.ActionNone, models.ActionFollow, models.ActionNone}, view.Actions)
}

func TestToggleReady(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	require.NoError(t, f.engine.Reconcile(context.Background(), schemaSnapshot(1)))

	require.NoError(t, f.engine.ToggleReady())
	assert.Equal(t, models.PhaseReadyPending, f.engine.View().Phase)

	require.NoError(t, f.engine.ToggleReady())
	assert.Equal(t, models.PhaseCollecting, f.engine.View().Phase)
}

// ── View ────────────────────────────────────────────────────────────────────

func TestView_TimeRemaining(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")

	snap := schemaSnapshot(1)
	snap.StepEndTime = float64(f.clock.Now().Unix()) + 30
	snap.Team = &models.Team{"Owls", "blue"}
	require.NoError(t, f.engine.Reconcile(context.Background(), snap))

	view := f.engine.View()
	assert.Equal(t, 30*time.Second, view.TimeRemaining)
	require.NotNil(t, view.Team)
	assert.Equal(t, "Owls", view.Team.Name())

	f.clock.Advance(time.Minute)
	assert.Equal(t, time.Duration(0), f.engine.View().TimeRemaining)
}

func TestView_ReturnsCopies(t *testing.T) {
	f := newEngineFixture(t, EngineSettings{})
	f.establish(t, "abc")
	require.NoError(t, f.engine.Reconcile(context.Background(), schemaSnapshot(1)))

	view := f.engine.View()
	view.Belief[0] = 42
	view.Actions[0] = models.ActionFollow

	fresh := f.engine.View()
	assert.NotEqual(t, 42, fresh.Belief[0])
	assert.Equal(t, models.ActionNone, fresh.Actions[0])
}
