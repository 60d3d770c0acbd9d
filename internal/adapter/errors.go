package adapter

import "errors"

// HTTP status sentinels, produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// Provider envelope sentinels, produced by mapProviderError.
var (
	// ErrKeyNotFound means the provider does not know the API key.
	ErrKeyNotFound = errors.New("api key not found")

	// ErrNoAPIKeyAvailable means GET /new-apikey returned a null key: every
	// participant slot is taken or no simulation is running.
	ErrNoAPIKeyAvailable = errors.New("no api key available")

	// ErrPermissionDenied means an admin endpoint was called with a
	// non-admin key.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNoActiveSimulation is returned by admin calls between simulations.
	ErrNoActiveSimulation = errors.New("no active simulation")

	// ErrServerRejected wraps any other non-null provider error message.
	ErrServerRejected = errors.New("provider rejected request")

	// ErrMalformedResponse means a 2xx body could not be decoded.
	ErrMalformedResponse = errors.New("malformed provider response")
)
