// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the participant's terminal interface: an API key prompt
// followed by the round screen (header, belief editor, feed table, ready
// toggle). All round state is read from and written to a SyncEngine.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/service"
	"github.com/MKhiriev/go-echo-feed/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// KeyPrompt asks the participant for an API key. A blank answer means
// "recover the saved key or request a new one".
func (t *TUI) KeyPrompt(ctx context.Context) (string, error) {
	finalModel, err := tea.NewProgram(newKeyPromptModel(), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ErrUserQuit
		}
		return "", err
	}

	result, ok := finalModel.(keyPromptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit {
		return "", ErrUserQuit
	}

	return result.value(), nil
}

// MainLoop runs the round screen until the participant quits or ctx is
// cancelled.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services.Engine, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.MainLoop").Msg("tui program failed")
	}
	return err
}
