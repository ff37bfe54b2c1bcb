package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/reva-widget/internal/config"
	"github.com/MKhiriev/reva-widget/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer validates its inputs and prepares an HTTP server for handler.
//
// Parameters:
//   - handler: root HTTP handler, usually the router from Handler.Init.
//   - cfg: listen address and request timeout.
//   - logger: structured logger for lifecycle events.
//
// It fails with errNoHTTPAddress when cfg has no address and with
// errNoHandler when handler is nil. Nothing listens until RunServer.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}
	if handler == nil {
		return nil, errNoHandler
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts the
// listener down gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

// Shutdown stops the HTTP server, waiting for in-flight requests.
func (s *server) Shutdown() {
	s.httpServer.shutdown()
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		errCh <- s.httpServer.listen()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.Shutdown()
		err := <-errCh
		s.logger.Info().Msg("server Shutdown gracefully")
		return err
	}
}
