// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server here) whose lifetime
// is owned by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
