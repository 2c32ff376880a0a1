// Package workers runs the agent's background workers: periodic tasks
// that read the resolved configuration but never modify it.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
