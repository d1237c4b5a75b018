package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// Run serves requests until ctx is cancelled or the listener fails,
	// then shuts down gracefully.
	Run(ctx context.Context) error

	// RunServer is Run bound to SIGTERM, SIGINT and SIGQUIT.
	RunServer() error
}
