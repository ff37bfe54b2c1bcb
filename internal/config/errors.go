package config

import "errors"

// Validation errors returned by [GetStructuredConfig].
var (
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrNegativeTimeout indicates a negative server or sparc timeout.
	ErrNegativeTimeout = errors.New("timeouts must not be negative")
)
