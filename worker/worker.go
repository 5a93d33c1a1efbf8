package worker

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run calls f, reporting a panic to sentry instead of taking the worker down with it.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to run on one of the workers. To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Run runs every job on the workers, waits for all of them and returns the
// first non-nil error in job order. A job that panics is reported to sentry
// and counts as failed.
func Run(jobs ...func() error) error {
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					sentry.CurrentHub().Recover(r)
					errs[i] = fmt.Errorf("job %d panicked: %v", i, r)
				}
			}()
			errs[i] = job()
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
