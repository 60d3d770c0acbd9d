package service

import "errors"

// Protocol error taxonomy. Match with errors.Is.
var (
	// ErrSession is the parent of every session-establishment failure.
	ErrSession = errors.New("session error")
	// ErrSessionInvalid means the provider no longer recognises the key.
	ErrSessionInvalid = errors.New("session is no longer valid")
	// ErrNoSession means an operation needs a session and there is none.
	ErrNoSession = errors.New("no session")

	// ErrTransient marks network and decoding failures of a poll. They are
	// retried by the next tick.
	ErrTransient = errors.New("transient provider error")

	// ErrSubmission marks a failed submit call.
	ErrSubmission = errors.New("submission failed")
)

// Reconciliation and input errors.
var (
	ErrStaleSnapshot  = errors.New("stale snapshot")
	ErrSchemaMismatch = errors.New("snapshot schema does not match the session")
	ErrPollInFlight   = errors.New("poll already in flight")
	ErrInvalidInput   = errors.New("invalid input")
)

// Provider-facing business errors produced by mapAdapterError.
var (
	ErrNoAPIKeyAvailable   = errors.New("no api key available")
	ErrRejectedByProvider  = errors.New("rejected by provider")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNoActiveSimulation  = errors.New("no active simulation")
)
