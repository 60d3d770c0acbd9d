package service

import (
	"math/rand/v2"
	"slices"

	"github.com/MKhiriev/go-echo-feed/models"
)

// noStep marks "no step observed / submitted yet".
const noStep = -1

// pendingRound buffers the participant's input for the current step.
// Vectors are allocated once the schema is known and survive step changes;
// only actions and ready are reset when the step advances.
type pendingRound struct {
	belief  []int
	swapped []bool
	actions []models.Action

	ready             bool
	lastSubmittedStep int
	submitFailed      bool
}

func newPendingRound(lastSubmittedStep int) pendingRound {
	return pendingRound{lastSubmittedStep: lastSubmittedStep}
}

// allocateBelief sizes the belief vector for n issues. Each issue gets a
// random presentation order and defaults to the pole presented first.
func (p *pendingRound) allocateBelief(n int, rng *rand.Rand) {
	p.belief = make([]int, n)
	p.swapped = make([]bool, n)
	for i := range n {
		p.swapped[i] = rng.IntN(2) == 1
		p.belief[i] = firstPresentedPole(p.swapped[i])
	}
}

func (p *pendingRound) allocateActions(n int) {
	p.actions = make([]models.Action, n)
}

func (p *pendingRound) hasBelief() bool {
	return len(p.belief) > 0
}

// advance resets the per-step input. Belief is kept.
func (p *pendingRound) advance() {
	for i := range p.actions {
		p.actions[i] = models.ActionNone
	}
	p.ready = false
	p.submitFailed = false
}

func (p *pendingRound) actionSet() models.ActionSet {
	return models.NewActionSet(p.belief, p.actions)
}

func (p *pendingRound) clone() pendingRound {
	c := *p
	c.belief = slices.Clone(p.belief)
	c.swapped = slices.Clone(p.swapped)
	c.actions = slices.Clone(p.actions)
	return c
}

func firstPresentedPole(swapped bool) int {
	if swapped {
		return models.PoleSecond
	}
	return models.PoleFirst
}
