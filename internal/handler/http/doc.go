// Package http exposes the widget settings and the sparc proxy over HTTP.
//
// Routes:
//
//	GET   /api/version    build information
//	GET   /api/config     current settings snapshot
//	PATCH /api/config     shallow-merge a JSON object into the settings
//	GET   /api/sparc/*    forward to the configured sparc service
//
// Every request gets a trace id (X-Trace-ID) and an access log entry.
package http
