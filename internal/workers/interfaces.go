// Package workers runs the background jobs of the sync client as one unit.
// It defines the Worker lifecycle and a Workers aggregate that starts jobs
// in order and stops them in reverse.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; long-running work belongs in goroutines owned by
// the worker. Stop waits for them and is safe to call more than once.
//
// Example implementation:
//
//	type ticker struct{ cancel context.CancelFunc }
//
//	func (t *ticker) Start(ctx context.Context) {
//	    ctx, t.cancel = context.WithCancel(ctx)
//	    go loop(ctx)
//	}
//
//	func (t *ticker) Stop() { t.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
