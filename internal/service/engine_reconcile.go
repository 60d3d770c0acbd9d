package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-echo-feed/models"
)

// Reconcile implements [SyncEngine].
func (e *syncEngine) Reconcile(ctx context.Context, snapshot models.RoundSnapshot) error {
	e.mu.Lock()

	key := e.session.APIKey
	if key == "" {
		e.mu.Unlock()
		return ErrNoSession
	}

	if e.lastSeenStep != noStep && snapshot.Step < e.lastSeenStep {
		e.mu.Unlock()
		return fmt.Errorf("%w: step %d after %d", ErrStaleSnapshot, snapshot.Step, e.lastSeenStep)
	}
	if err := e.checkSchemaLocked(snapshot); err != nil {
		e.mu.Unlock()
		return err
	}

	// first sight of the schema
	if e.issues == nil && len(snapshot.Issues) > 0 {
		e.issues = slices.Clone(snapshot.Issues)
		e.pending.allocateBelief(len(e.issues), e.rng)
	}
	if e.outDegree == 0 && snapshot.OutDegree > 0 {
		e.outDegree = snapshot.OutDegree
		e.pending.allocateActions(e.outDegree)
	}

	if snapshot.Step != e.lastSeenStep {
		e.pending.advance()
		e.lastSeenStep = snapshot.Step
	}

	var (
		submit bool
		set    models.ActionSet
	)
	if e.pending.ready && e.pending.lastSubmittedStep != snapshot.Step && e.pending.hasBelief() {
		set = e.pending.actionSet()
		e.pending.lastSubmittedStep = snapshot.Step
		e.pending.submitFailed = false
		submit = true
	}

	e.projectLocked(snapshot)
	e.mu.Unlock()

	if submit {
		e.dispatchSubmission(ctx, key, snapshot.Step, set)
	}

	return nil
}

// checkSchemaLocked rejects a snapshot whose non-empty schema differs in
// cardinality from the one established for the session.
func (e *syncEngine) checkSchemaLocked(snapshot models.RoundSnapshot) error {
	if e.issues != nil && len(snapshot.Issues) > 0 && len(snapshot.Issues) != len(e.issues) {
		return fmt.Errorf("%w: %d issues, expected %d", ErrSchemaMismatch, len(snapshot.Issues), len(e.issues))
	}
	if e.outDegree > 0 && snapshot.OutDegree > 0 && snapshot.OutDegree != e.outDegree {
		return fmt.Errorf("%w: out degree %d, expected %d", ErrSchemaMismatch, snapshot.OutDegree, e.outDegree)
	}
	return nil
}

// projectLocked stores the aggregates of snapshot; the latest snapshot wins.
// Fields a partial snapshot omits keep their previous value.
func (e *syncEngine) projectLocked(snapshot models.RoundSnapshot) {
	projected := snapshot
	if prev := e.snapshot; prev != nil {
		if projected.Messages == nil {
			projected.Messages = prev.Messages
		}
		if projected.Team == nil {
			projected.Team = prev.Team
		}
		if projected.StepEndTime == 0 && prev.Step == projected.Step {
			projected.StepEndTime = prev.StepEndTime
		}
	}
	if len(projected.Issues) > 0 {
		e.issues = slices.Clone(projected.Issues)
	}
	projected.Issues = e.issues
	projected.OutDegree = e.outDegree

	e.snapshot = &projected
}

// dispatchSubmission sends set on its own goroutine. The request outlives
// the tick that triggered it.
func (e *syncEngine) dispatchSubmission(ctx context.Context, key string, step int, set models.ActionSet) {
	sendCtx := context.WithoutCancel(ctx)

	e.submits.Add(1)
	go func() {
		defer e.submits.Done()

		log := e.logger.WithAPIKey(key)
		err := e.submit(sendCtx, key, set)

		record := models.Submission{APIKey: key, Step: step, Actions: set, SubmittedAt: e.clock.Now().Unix()}
		if err != nil {
			record.Error = err.Error()
		}
		if jErr := e.submissions.SaveSubmission(sendCtx, record); jErr != nil {
			log.Err(jErr).Str("func", "syncEngine.dispatchSubmission").Int("step", step).Msg("failed to journal submission")
		}

		if err != nil {
			log.Warn().Err(err).Str("func", "syncEngine.dispatchSubmission").Int("step", step).Msg("submission failed")

			e.mu.Lock()
			if e.session.APIKey == key && e.pending.lastSubmittedStep == step {
				e.pending.submitFailed = true
			}
			e.mu.Unlock()

			e.notify(Notice{Kind: NoticeSubmissionFailed, Step: step, Err: err})
			return
		}

		log.Info().Str("func", "syncEngine.dispatchSubmission").Int("step", step).Msg("submitted")
		e.notify(Notice{Kind: NoticeSubmitted, Step: step})
	}()
}

// SubmitActions implements [SyncEngine].
func (e *syncEngine) SubmitActions(ctx context.Context, belief []int, actions []models.Action) error {
	key := e.apiKey()
	if key == "" {
		return ErrNoSession
	}

	return e.submit(ctx, key, models.NewActionSet(belief, actions))
}

func (e *syncEngine) submit(ctx context.Context, key string, set models.ActionSet) error {
	var err error
	if e.variant.SendsActions() {
		err = e.provider.SendActions(ctx, key, set)
	} else {
		err = e.provider.SendMessage(ctx, key, set.Message)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmission, mapAdapterError(err))
	}

	return nil
}
