package config

import "errors"

// Returned (possibly wrapped) by validation and [LoadVariant].
var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs covers keys and the allow-resubmit toggle.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs: zero poll interval or negative bot count.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidVariant: unreadable variant file, or an unknown action,
	// metric column or endpoint in it.
	ErrInvalidVariant = errors.New("invalid variant")
)
