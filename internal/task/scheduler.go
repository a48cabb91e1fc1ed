package task

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// SchedulerConfig sizes a Scheduler.
type SchedulerConfig struct {
	MaxWorkers int
}

// DefaultSchedulerConfig sizes the scheduler to the machine's available
// parallelism, the same default original_source's SchedulerConfig uses.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{MaxWorkers: runtime.GOMAXPROCS(0)}
}

// Scheduler is a single process-wide work-stealing task scheduler: one
// shared injector plus one local deque per worker goroutine (spec.md §4.6).
// Grounded on original_source/src/runtime/task/scheduler.rs's TaskScheduler.
type Scheduler struct {
	injector *injector
	locals   []*deque
	metrics  *RuntimeMetrics
	shutdown atomic.Bool
	wg       sync.WaitGroup
}

// New builds and starts a Scheduler with cfg.MaxWorkers worker goroutines.
func New(cfg SchedulerConfig) *Scheduler {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	s := &Scheduler{
		injector: newInjector(),
		locals:   make([]*deque, cfg.MaxWorkers),
		metrics:  NewRuntimeMetrics(),
	}
	for i := range s.locals {
		s.locals[i] = newDeque()
	}
	for i := 0; i < cfg.MaxWorkers; i++ {
		s.wg.Add(1)
		go s.workerLoop(i)
	}
	return s
}

// Metrics returns the scheduler's runtime counters.
func (s *Scheduler) Metrics() *RuntimeMetrics { return s.metrics }

// Spawn submits fn for execution and returns a JoinHandle. After Shutdown,
// Spawn is a non-blocking no-op that returns an already-completed handle
// carrying an error instead of deadlocking or running fn inline on the
// caller's goroutine — the Open Question spec.md §9 leaves unresolved (see
// DESIGN.md).
func (s *Scheduler) Spawn(name string, fn func()) *JoinHandle {
	if s.shutdown.Load() {
		state := NewJoinState()
		state.MarkComplete()
		h := newJoinHandle(TaskId(0), state)
		h.err = fmt.Errorf("task: spawn after shutdown rejected")
		return h
	}

	t := NewTask(name, fn)
	s.metrics.recordSpawn()
	s.injector.push(t)
	return newJoinHandle(t.ID(), t.JoinState())
}

// Shutdown flags the scheduler stopped and pushes one no-op task per
// worker so every worker's next steal attempt observes the flag and exits.
// Shutdown does not wait for in-flight tasks to finish; callers that need
// that should call Wait after Shutdown.
func (s *Scheduler) Shutdown() {
	if !s.shutdown.CompareAndSwap(false, true) {
		return
	}
	for range s.locals {
		s.injector.push(NewTask("", func() {}))
	}
}

// Wait blocks until every worker goroutine has exited (call after
// Shutdown).
func (s *Scheduler) Wait() { s.wg.Wait() }

func (s *Scheduler) workerLoop(index int) {
	defer s.wg.Done()
	local := s.locals[index]
	var bo backoff

	for {
		if s.shutdown.Load() {
			return
		}

		if t := local.popFront(); t != nil {
			bo.Reset()
			t.Run()
			s.metrics.recordCompletion()
			continue
		}

		if t := s.injector.stealBatchAndPop(local, 32); t != nil {
			bo.Reset()
			t.Run()
			s.metrics.recordCompletion()
			continue
		}

		var stolen *Task
		for i, sibling := range s.locals {
			if i == index {
				continue
			}
			if t := sibling.stealBack(); t != nil {
				stolen = t
				break
			}
		}
		if stolen != nil {
			bo.Reset()
			stolen.Run()
			s.metrics.recordCompletion()
			continue
		}

		if bo.IsCompleted() {
			time.Sleep(100 * time.Microsecond)
		} else if bo.count < spinLimit {
			bo.Spin()
		} else {
			bo.Snooze()
		}
	}
}
