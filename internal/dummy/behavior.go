// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dummy runs bot participants. Every bot owns a SyncEngine and
// plays through the same input path as a human: it picks a belief vector
// with a Behavior, sets it and marks itself ready.
package dummy

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/MKhiriev/go-echo-feed/models"
)

// Behavior names accepted by ParseBehavior.
const (
	BehaviorRandom                     = "random"
	BehaviorZeroIntelligence           = "zero-intelligence"
	BehaviorZeroIntelligenceUnweighted = "zero-intelligence-unweighted"
)

var ErrUnknownBehavior = errors.New("unknown bot behavior")

// Behavior chooses a belief vector, one ±1 value per issue, from what the
// bot currently sees.
type Behavior func(view models.RoundView, rng *rand.Rand) []int

// ParseBehavior resolves a behavior by name. An empty name selects
// zero-intelligence.
func ParseBehavior(name string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BehaviorRandom:
		return Random, nil
	case BehaviorZeroIntelligence, "":
		return ZeroIntelligence, nil
	case BehaviorZeroIntelligenceUnweighted:
		return ZeroIntelligenceUnweighted, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, name)
	}
}

// Random picks every pole uniformly, ignoring the feed.
func Random(view models.RoundView, rng *rand.Rand) []int {
	belief := make([]int, len(view.Issues))
	for i := range belief {
		if rng.IntN(2) == 0 {
			belief[i] = models.PoleFirst
		} else {
			belief[i] = models.PoleSecond
		}
	}
	return belief
}

// ZeroIntelligence follows the most popular pole in the feed, every post
// weighted by its author's metric.
func ZeroIntelligence(view models.RoundView, _ *rand.Rand) []int {
	return feedConsensus(view, func(m models.FeedMessage) float64 { return float64(m.Metric) })
}

// ZeroIntelligenceUnweighted is ZeroIntelligence with every post counted
// once.
func ZeroIntelligenceUnweighted(view models.RoundView, _ *rand.Rand) []int {
	return feedConsensus(view, func(models.FeedMessage) float64 { return 1 })
}

// feedConsensus sums the posts of the feed with the given weights and takes
// the sign per issue. A tie goes to PoleSecond.
func feedConsensus(view models.RoundView, weight func(models.FeedMessage) float64) []int {
	n := len(view.Issues)
	sum := make([]float64, n)
	post := make([]float64, n)

	for _, msg := range view.Feed {
		for i := range post {
			post[i] = 0
			if i < len(msg.Post) {
				post[i] = float64(msg.Post[i])
			}
		}
		floats.AddScaled(sum, weight(msg), post)
	}

	belief := make([]int, n)
	for i, v := range sum {
		belief[i] = int(math.Copysign(1, v))
	}
	return belief
}
