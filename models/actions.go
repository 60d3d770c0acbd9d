// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Belief poles. Every belief-state value is one of them.
const (
	PoleFirst  = -1
	PoleSecond = 1
)

// Action is a social action on one feed slot.
type Action int

const (
	ActionUnfollow Action = -1
	ActionNone     Action = 0
	ActionFollow   Action = 1
)

func (a Action) String() string {
	switch a {
	case ActionFollow:
		return "follow"
	case ActionUnfollow:
		return "unfollow"
	case ActionNone:
		return "none"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction converts a variant file token into an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "follow", "recommend", "+1", "1":
		return ActionFollow, nil
	case "unfollow", "-1":
		return ActionUnfollow, nil
	case "none", "neutral", "0", "":
		return ActionNone, nil
	default:
		return ActionNone, fmt.Errorf("unknown action %q", s)
	}
}

// UnmarshalText lets actions be listed by name in YAML and JSON.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ActionSet is the payload of a round submission.
//
// Follows uses the canonical signed encoding: one entry per feed slot,
// index-aligned with the feed of the snapshot the participant acted on,
// +1 follow, -1 unfollow, 0 no change.
type ActionSet struct {
	Message []int `json:"message"`
	Follows []int `json:"follows,omitempty"`
}

// NewActionSet copies belief and actions into a wire payload.
func NewActionSet(belief []int, actions []Action) ActionSet {
	set := ActionSet{
		Message: append([]int(nil), belief...),
		Follows: make([]int, len(actions)),
	}
	for i, a := range actions {
		set.Follows[i] = int(a)
	}
	return set
}

// Submission is a journal record of one submission attempt.
type Submission struct {
	APIKey  string
	Step    int
	Actions ActionSet
	// Error holds the provider or transport error text, empty on success.
	Error       string
	SubmittedAt int64
}
