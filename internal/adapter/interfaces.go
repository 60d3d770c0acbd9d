// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Round State Provider, the simulation backend that owns rounds, feeds
// and scores.
//
// The primary abstraction is [RoundStateProvider], which decouples the sync
// engine from the underlying protocol. [AdminProvider] covers the operator
// endpoints used by the admin CLI. The package ships an HTTP/JSON
// implementation of both ([NewHTTPRoundStateProvider],
// [NewHTTPAdminProvider]).
//
// The provider reports most failures in-band through an {"error": ...}
// envelope with HTTP 200. Those answers, as well as non-2xx statuses, are
// mapped to the sentinel values in errors.go so that callers can use
// [errors.Is] (e.g. [ErrKeyNotFound], [ErrServerRejected]).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-echo-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// RoundStateProvider defines the participant-side contract of the
// simulation backend. Every call except NewAPIKey is scoped by an opaque
// API key.
type RoundStateProvider interface {
	// BaseURL returns the normalised provider address. It is persisted with
	// the session so a key is never replayed against another provider.
	BaseURL() string

	// NewAPIKey asks the provider for an unused participant key
	// (GET /new-apikey). Returns [ErrNoAPIKeyAvailable] when the provider
	// answers with a null key.
	NewAPIKey(ctx context.Context) (string, error)

	// GetState fetches the participant's view of the current round
	// (GET /state/{apiKey}). Returns [ErrKeyNotFound] when the provider
	// does not know apiKey, or a transport / decoding error otherwise.
	GetState(ctx context.Context, apiKey string) (models.RoundSnapshot, error)

	// SendActions posts a belief-state message together with the signed
	// per-slot action vector (POST /send-actions/{apiKey}). A non-null
	// provider error is returned wrapped in [ErrServerRejected].
	SendActions(ctx context.Context, apiKey string, actions models.ActionSet) error

	// SendMessage posts a belief-state message only
	// (POST /send-message/{apiKey}). Used by variants without social
	// actions.
	SendMessage(ctx context.Context, apiKey string, message []int) error
}

// AdminProvider defines the operator endpoints. Every call requires the
// admin key; a wrong key yields [ErrPermissionDenied]. Payloads other than
// the error envelope are treated as opaque JSON.
type AdminProvider interface {
	// SimulationState returns the running simulation summary
	// (GET /simulation-state/{key}). Returns [ErrNoActiveSimulation]
	// between simulations.
	SimulationState(ctx context.Context, adminKey string) (models.SimulationState, error)

	// AdminView returns the per-key progress of the running simulation
	// (GET /admin-view/{key}).
	AdminView(ctx context.Context, adminKey string) (json.RawMessage, error)

	// DefaultParameters returns the provider's default simulation
	// parameters (GET /get-default-parameters/{key}).
	DefaultParameters(ctx context.Context, adminKey string) (json.RawMessage, error)

	// PastSimulations returns every completed simulation
	// (GET /past-simulations/{key}). The provider ends the active
	// simulation as a side effect.
	PastSimulations(ctx context.Context, adminKey string) (json.RawMessage, error)

	// CreateSimulation starts (or queues) a simulation with params
	// (POST /create-simulation/{key}).
	CreateSimulation(ctx context.Context, adminKey string, params json.RawMessage) error

	// EndSimulation ends the active simulation (GET /end-simulation/{key}).
	EndSimulation(ctx context.Context, adminKey string) error

	// PauseSimulation freezes the round timer (POST /pause-simulation/{key}).
	PauseSimulation(ctx context.Context, adminKey string) error

	// ResumeSimulation restarts the round timer
	// (POST /resume-simulation/{key}).
	ResumeSimulation(ctx context.Context, adminKey string) error
}
