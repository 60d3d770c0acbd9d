// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs one interactive participant: it resolves the API key,
// starts the poll job against the round state provider and keeps the round
// screen open until the participant quits.
package client
