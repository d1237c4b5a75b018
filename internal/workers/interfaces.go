// Package workers runs the background jobs of the vault server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutine which
// exits when ctx is cancelled or Stop is called. Stop blocks until that
// goroutine has returned and is a no-op when the worker is idle.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Sweeper reclaims overdue quarantine records. QuarantineService satisfies it.
type Sweeper interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}
