// Package delivery defines the transports that expose the application.
package delivery

import "context"

// Delivery is one serving surface of the application, e.g. an HTTP server.
// Implementations block in Serve until the surface is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
