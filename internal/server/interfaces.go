package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A server stopped by Shutdown returns nil.
	RunServer() error

	// Shutdown gracefully stops the server, waiting for active requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
