// Package delivery defines the transport-facing server abstraction.
package delivery

import "context"

// Delivery is a long-running transport server started by the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
