// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Submit endpoints a variant may post round input to.
const (
	EndpointActions = "actions"
	EndpointMessage = "message"
)

// Variant is the declarative description of a client build: which metric
// the feed shows, which per-slot actions a participant may take and where
// round input is posted. It replaces per-build client code.
type Variant struct {
	Name         string   `json:"name"`
	MetricColumn string   `json:"metric_column"`
	Actions      []Action `json:"actions"`
	Endpoint     string   `json:"endpoint"`
}

// DefaultVariant is the follow/unfollow build with a followers column.
func DefaultVariant() Variant {
	return Variant{
		Name:         "default",
		MetricColumn: MetricFollowers,
		Actions:      []Action{ActionNone, ActionFollow, ActionUnfollow},
		Endpoint:     EndpointActions,
	}
}

// Allows reports whether a participant may set action on a feed slot.
// ActionNone is always allowed.
func (v Variant) Allows(a Action) bool {
	return a == ActionNone || slices.Contains(v.Actions, a)
}

// Next returns the allowed action that follows a when cycling.
func (v Variant) Next(a Action) Action {
	cycle := []Action{ActionNone}
	for _, candidate := range []Action{ActionFollow, ActionUnfollow} {
		if v.Allows(candidate) {
			cycle = append(cycle, candidate)
		}
	}

	idx := slices.Index(cycle, a)
	return cycle[(idx+1)%len(cycle)]
}

// SendsActions reports whether the variant posts to /send-actions.
func (v Variant) SendsActions() bool {
	return v.Endpoint != EndpointMessage
}
