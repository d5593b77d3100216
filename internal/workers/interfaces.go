// Package workers provides abstractions for managing background workers.
// It defines the Worker interface and a Workers aggregate that runs and
// stops multiple workers in a unified way.
package workers

// Worker is the interface implemented by any background worker.
//
// Run starts the worker's execution. Implementations are expected to
// spawn goroutines internally and return immediately. Stop shuts the
// worker down and blocks until its goroutines have exited; it must be
// safe to call when the worker is not running.
type Worker interface {
	Run()
	Stop()
}
