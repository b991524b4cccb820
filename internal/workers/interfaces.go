// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution. Implementations are expected to spawn
// a goroutine internally and return immediately; Stop cancels the goroutine
// and blocks until it has exited. Stop is safe to call on a worker that was
// never started.
type Worker interface {
	Run()
	Stop()
}
