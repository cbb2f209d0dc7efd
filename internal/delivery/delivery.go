// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a server started by the fx application.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
