// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// APIKeyResponse is returned by GET /new-apikey. APIKey is null when the
// provider has no free participant slot.
type APIKeyResponse struct {
	APIKey *string `json:"apiKey"`
}

// ErrorResponse is the common {error: string|null} envelope.
type ErrorResponse struct {
	Error *string `json:"error"`
}

// SimulationState is the admin view of the running simulation. Params and
// AgentData are kept opaque.
type SimulationState struct {
	Error       *string           `json:"error"`
	Params      json.RawMessage   `json:"params,omitempty"`
	Step        int               `json:"step"`
	Paused      bool              `json:"paused"`
	Ready       int               `json:"ready"`
	AgentData   []json.RawMessage `json:"agentData,omitempty"`
	StepEndTime float64           `json:"stepEndTime"`
}
