// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the external sparc service on behalf of the widget.
//
// The sparc base URL is never cached: [SparcAdapter] implementations read it
// from a [ConfigSource] on every request, so configure calls made before a
// request take effect for that request.
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/reva-widget/internal/settings"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sparc_adapter_mock.go -package=mock

// ConfigSource yields the current widget settings. *settings.Store satisfies it.
type ConfigSource interface {
	UseConfig() settings.Settings
}

// Response is the upstream reply passed back unchanged.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// SparcAdapter issues requests to the sparc service.
type SparcAdapter interface {
	// Get sends GET {sparcApi}/{path}?{query} and returns the reply whatever
	// its status code. Dot segments in path are resolved and a path that
	// climbs above the base fails with ErrInvalidSparcPath. Other errors are
	// reserved for a missing or malformed base URL and for transport failures.
	Get(ctx context.Context, path string, query url.Values) (Response, error)
}
