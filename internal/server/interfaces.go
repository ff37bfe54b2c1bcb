package server

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves until a stop signal arrives or the listener fails.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
