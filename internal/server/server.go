package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/handler"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 15 * time.Second

type server struct {
	address    string
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	switch {
	case handlers == nil || handlers.HTTP == nil:
		return nil, errNoHTTPHandler
	case cfg.HTTPAddress == "":
		return nil, errNoHTTPAddress
	}

	return &server{
		address:    cfg.HTTPAddress,
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.address, err)
	}

	return s.serve(ctx, l)
}

func (s *server) serve(ctx context.Context, l net.Listener) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", l.Addr().String()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.Serve(l)
	}()

	select {
	case err := <-serveErr:
		// the listener failed before any shutdown was requested
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
