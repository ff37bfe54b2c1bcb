// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level startup configuration of the widget host.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and request timeout of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Sparc holds outbound settings for requests to the sparc service.
	Sparc Sparc `envPrefix:"SPARC_"`

	// Widget holds widget options applied to the settings store at startup.
	// Filled from the -sparc-api flag and the "widget" object of the JSON
	// file; keys are passed through as-is.
	Widget map[string]any

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reads and writes of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sparc holds settings for the outbound sparc client. The base URL itself is
// not here: it lives in the settings store and is read on every request.
type Sparc struct {
	// RequestTimeout bounds a single request to the sparc service.
	// Env: SPARC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the startup configuration
// from environment variables, command-line flags and the optional JSON file,
// in that order (last source wins for non-zero fields).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
