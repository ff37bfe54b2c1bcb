// Package server runs the widget host's HTTP server until a termination
// signal arrives, then shuts it down gracefully.
package server
