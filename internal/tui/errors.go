// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-echo-feed/internal/service"
)

// humanizeServerUnavailableError turns a session failure into the status
// line text.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	switch {
	case errors.Is(err, service.ErrNoAPIKeyAvailable):
		return "Свободных мест в игре нет, попробуйте позже"
	case errors.Is(err, service.ErrSessionInvalid):
		return "Ключ больше не действителен, получаем новый"
	case errors.As(err, &netErr), errors.Is(err, context.DeadlineExceeded), looksLikeNetworkFailure(err):
		return "Отсутствует сеть или сервер недоступен"
	case errors.Is(err, service.ErrProviderUnavailable):
		return "Сервер недоступен"
	}

	return err.Error()
}

// looksLikeNetworkFailure catches transport errors that reach us as text
// only (resty flattens some of them).
func looksLikeNetworkFailure(err error) bool {
	s := strings.ToLower(err.Error())
	for _, marker := range []string{"connection refused", "no such host", "network is unreachable", "i/o timeout"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
