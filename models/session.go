// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the client's handle on the provider: an opaque API key issued
// by the server (or typed in by the participant).
type Session struct {
	// APIKey is the opaque token scoping every provider request.
	APIKey string `json:"api_key"`

	// ServerURL is the provider base URL the key was issued by. Persisted so
	// that a key is never replayed against a different provider.
	ServerURL string `json:"server_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty reports whether the session carries no key.
func (s Session) IsEmpty() bool {
	return s.APIKey == ""
}
