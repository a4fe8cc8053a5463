// Package delivery defines the contract every transport implementation
// (HTTP, workers, ...) exposes to the application entrypoint.
package delivery

import "context"

// Delivery is a long-running transport serving the application's use cases.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
