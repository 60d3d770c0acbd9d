package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-echo-feed/models"
)

// SetBelief implements [SyncEngine].
func (e *syncEngine) SetBelief(issue, pole int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkIssueLocked(issue); err != nil {
		return err
	}
	if pole != models.PoleFirst && pole != models.PoleSecond {
		return fmt.Errorf("%w: pole %d", ErrInvalidInput, pole)
	}

	e.pending.belief[issue] = pole
	return nil
}

// SetBeliefVector implements [SyncEngine].
func (e *syncEngine) SetBeliefVector(belief []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.pending.hasBelief() {
		return fmt.Errorf("%w: issues are not known yet", ErrInvalidInput)
	}
	if len(belief) != len(e.pending.belief) {
		return fmt.Errorf("%w: belief has %d values, expected %d", ErrInvalidInput, len(belief), len(e.pending.belief))
	}
	for i, pole := range belief {
		if pole != models.PoleFirst && pole != models.PoleSecond {
			return fmt.Errorf("%w: pole %d at issue %d", ErrInvalidInput, pole, i)
		}
	}

	copy(e.pending.belief, belief)
	return nil
}

// FlipBelief implements [SyncEngine].
func (e *syncEngine) FlipBelief(issue int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkIssueLocked(issue); err != nil {
		return err
	}

	e.pending.belief[issue] = -e.pending.belief[issue]
	return nil
}

func (e *syncEngine) checkIssueLocked(issue int) error {
	if issue < 0 || issue >= len(e.pending.belief) {
		return fmt.Errorf("%w: issue %d out of range", ErrInvalidInput, issue)
	}
	return nil
}

// SetAction implements [SyncEngine].
func (e *syncEngine) SetAction(slot int, action models.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkSlotLocked(slot); err != nil {
		return err
	}
	if !e.variant.Allows(action) {
		return fmt.Errorf("%w: action %s is not allowed", ErrInvalidInput, action)
	}

	e.pending.actions[slot] = action
	return nil
}

// CycleAction implements [SyncEngine].
func (e *syncEngine) CycleAction(slot int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkSlotLocked(slot); err != nil {
		return err
	}

	e.pending.actions[slot] = e.variant.Next(e.pending.actions[slot])
	return nil
}

func (e *syncEngine) checkSlotLocked(slot int) error {
	if slot < 0 || slot >= len(e.pending.actions) {
		return fmt.Errorf("%w: slot %d out of range", ErrInvalidInput, slot)
	}
	return nil
}

// SetReady implements [SyncEngine].
func (e *syncEngine) SetReady(ready bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ready && !e.pending.hasBelief() {
		return fmt.Errorf("%w: issues are not known yet", ErrInvalidInput)
	}

	// explicit re-trigger after a failed submission in the same step
	if ready && e.allowResubmit && e.pending.submitFailed && e.pending.lastSubmittedStep == e.lastSeenStep {
		e.pending.lastSubmittedStep = noStep
		e.pending.submitFailed = false
	}

	e.pending.ready = ready
	return nil
}

// ToggleReady implements [SyncEngine].
func (e *syncEngine) ToggleReady() error {
	e.mu.Lock()
	ready := e.pending.ready
	e.mu.Unlock()

	return e.SetReady(!ready)
}

// View implements [SyncEngine].
func (e *syncEngine) View() models.RoundView {
	e.mu.Lock()
	defer e.mu.Unlock()

	pending := e.pending.clone()
	view := models.RoundView{
		APIKey:            e.session.APIKey,
		Phase:             e.phaseLocked(),
		Step:              e.lastSeenStep,
		Issues:            slices.Clone(e.issues),
		OutDegree:         e.outDegree,
		Belief:            pending.belief,
		Swapped:           pending.swapped,
		Actions:           pending.actions,
		Ready:             pending.ready,
		LastSubmittedStep: pending.lastSubmittedStep,
		SubmitFailed:      pending.submitFailed,
	}

	if s := e.snapshot; s != nil {
		view.Feed = slices.Clone(s.Messages)
		view.Likes = s.Likes
		view.LikeChange = s.LikeChange
		view.Followers = s.Followers
		view.ReadyCount = s.ReadyCount
		view.Size = s.Size
		if s.Team != nil {
			team := *s.Team
			view.Team = &team
		}
		if end := s.EndTime(); !end.IsZero() {
			view.TimeRemaining = max(end.Sub(e.clock.Now()), time.Duration(0))
		}
	}

	return view
}

func (e *syncEngine) phaseLocked() models.RoundPhase {
	switch {
	case e.session.APIKey == "" && e.invalid:
		return models.PhaseInvalid
	case e.lastSeenStep != noStep && e.pending.lastSubmittedStep == e.lastSeenStep:
		return models.PhaseSubmitted
	case e.pending.ready:
		return models.PhaseReadyPending
	default:
		return models.PhaseCollecting
	}
}
