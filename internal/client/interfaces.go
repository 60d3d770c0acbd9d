// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable participant.
type Client interface {
	// Run blocks until the participant quits or the process is signalled.
	Run() error
}

// Prompter is the part of the terminal UI the App drives.
type Prompter interface {
	// KeyPrompt asks for an API key; blank means recover or request one.
	KeyPrompt(ctx context.Context) (string, error)
	// MainLoop shows the round screen until quit.
	MainLoop(ctx context.Context) error
}
