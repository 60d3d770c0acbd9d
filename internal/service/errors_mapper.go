// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrKeyNotFound):
		return ErrSessionInvalid

	case errors.Is(err, adapter.ErrNoAPIKeyAvailable):
		return ErrNoAPIKeyAvailable

	case errors.Is(err, adapter.ErrPermissionDenied):
		return ErrPermissionDenied

	case errors.Is(err, adapter.ErrNoActiveSimulation):
		return ErrNoActiveSimulation

	case errors.Is(err, adapter.ErrServerRejected):
		return fmt.Errorf("%w: %s", ErrRejectedByProvider, extractBody(err))

	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
