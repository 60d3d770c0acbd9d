// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-echo-feed adapter, services and the stub provider.
//
// All Msg* constants are the exact error strings the Round State Provider
// writes into the "error" field of its JSON envelopes. Keeping them in one
// place lets the adapter classify provider answers with errors.Is instead of
// comparing strings at every call site.
package app

const (
	// MsgKeyNotFound is returned by GET /state/{apiKey} when the provider
	// does not know the key (expired simulation, typo, server restart).
	MsgKeyNotFound = "keyNotFound"

	// MsgPermissionDenied is returned by every admin endpoint when the key
	// is not the admin key.
	MsgPermissionDenied = "Permission denied"

	// MsgNoActiveSimulation is returned by GET /simulation-state/{key}
	// between simulations.
	MsgNoActiveSimulation = "No active simulation"
)
