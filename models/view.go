// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RoundPhase is the state of the current round from the participant's side.
type RoundPhase int

const (
	// PhaseCollecting: participant edits input, not ready.
	PhaseCollecting RoundPhase = iota
	// PhaseReadyPending: ready is set, the submission has not been sent.
	PhaseReadyPending
	// PhaseSubmitted: exactly one submission was issued for this step.
	PhaseSubmitted
	// PhaseInvalid: the provider rejected the session key.
	PhaseInvalid
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseCollecting:
		return "collecting"
	case PhaseReadyPending:
		return "ready"
	case PhaseSubmitted:
		return "submitted"
	case PhaseInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// RoundView is an immutable projection of engine state for rendering and
// for bots. Slices are copies.
type RoundView struct {
	APIKey string
	Phase  RoundPhase

	// Step is -1 until the first snapshot is applied.
	Step          int
	TimeRemaining time.Duration

	Issues    []Issue
	OutDegree int
	Feed      []FeedMessage

	Likes      int
	LikeChange int
	Followers  int
	ReadyCount int
	Size       int
	Team       *Team

	Belief []int
	// Swapped[i] is true when issue i is presented second-label-first.
	Swapped           []bool
	Actions           []Action
	Ready             bool
	LastSubmittedStep int
	SubmitFailed      bool
}

// HasSchema reports whether belief and action vectors are allocated.
func (v RoundView) HasSchema() bool {
	return len(v.Belief) > 0 && len(v.Actions) > 0
}
