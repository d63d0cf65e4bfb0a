package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// a transport fails. Either way every started transport is shut down
	// before it returns.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server. When ctx expires first,
	// remaining connections are closed forcibly.
	Shutdown(ctx context.Context) error
}
