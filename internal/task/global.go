package task

import "sync"

var (
	globalOnce sync.Once
	global     *Scheduler
)

// Global returns the process-wide Scheduler, constructed lazily on first
// use and sized to the machine's available parallelism (spec.md §4.6:
// "A single process-wide scheduler, lazily constructed on first use").
func Global() *Scheduler {
	globalOnce.Do(func() {
		global = New(DefaultSchedulerConfig())
	})
	return global
}
