// Package delivery holds the entry points that expose the usecases: the HTTP API, the mail worker and the
// maintenance scheduler.
package delivery

import "context"

// Delivery is a long-running entry point started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
