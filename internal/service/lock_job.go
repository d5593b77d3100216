package service

import (
	"context"
	"sync"
	"time"

	"github.com/mzolotarev/keywarden/internal/workers"
)

type idleCheckJob struct {
	machine  LockMachine
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIdleCheckJob creates the background worker that drives the lock
// machine's idle check on a ticker. If interval is zero or negative it
// defaults to 10 seconds. The job is idle until Run is called.
func NewIdleCheckJob(machine LockMachine, interval time.Duration) workers.Worker {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &idleCheckJob{machine: machine, interval: interval}
}

// Run implements workers.Worker. It stops any previously running job,
// then launches a goroutine that calls CheckIdle every interval until
// Stop is called.
func (j *idleCheckJob) Run() {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.machine.CheckIdle()
			}
		}
	}()
}

// Stop implements workers.Worker. It cancels the background goroutine and
// blocks until it has fully exited. Safe to call when the job is not
// running.
func (j *idleCheckJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
