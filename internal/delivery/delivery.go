// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a long-running transport surface, started once by the
// application entry point and stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
