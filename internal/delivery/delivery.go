// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until shutdown or a
// fatal error.
type Delivery interface {
	Serve(ctx context.Context) error
}
