package task

import (
	"sync"
	"sync/atomic"
)

// TaskId uniquely identifies a task, assigned at creation time.
type TaskId uint64

var nextTaskID uint64

func newTaskID() TaskId {
	return TaskId(atomic.AddUint64(&nextTaskID, 1))
}

// TaskState is a task's lifecycle stage.
type TaskState int

const (
	TaskReady TaskState = iota
	TaskRunning
	TaskCompleted
)

// JoinState is the synchronization primitive shared between a task and its
// JoinHandle/JoinFuture: a mutex-guarded completion flag plus a condition
// variable for blocking joins and a waker list for the async poll protocol.
// Grounded on original_source/src/runtime/task/task.rs's JoinState
// (parking_lot Mutex+Condvar there, sync.Mutex+sync.Cond here).
type JoinState struct {
	mu        sync.Mutex
	cond      *sync.Cond
	completed bool
	waiters   []func()
}

// NewJoinState builds an incomplete JoinState.
func NewJoinState() *JoinState {
	s := &JoinState{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// MarkComplete flips the state to completed, waking every blocked Join
// caller and invoking every registered waker exactly once.
func (s *JoinState) MarkComplete() {
	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		return
	}
	s.completed = true
	waiters := s.waiters
	s.waiters = nil
	s.mu.Unlock()

	s.cond.Broadcast()
	for _, wake := range waiters {
		wake()
	}
}

// IsComplete is a non-blocking completion check.
func (s *JoinState) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// WaitBlocking blocks the calling goroutine until the task completes.
func (s *JoinState) WaitBlocking() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.completed {
		s.cond.Wait()
	}
}

// RegisterWaker reports true (already done, poll again immediately) if the
// task is already complete; otherwise it queues wake to run exactly once on
// completion and reports false (pending).
func (s *JoinState) RegisterWaker(wake func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return true
	}
	s.waiters = append(s.waiters, wake)
	return false
}

// Task is one unit of scheduled work: an id, an optional name, its
// callable, and the JoinState its handles observe.
type Task struct {
	id    TaskId
	name  string
	fn    func()
	join  *JoinState
	state TaskState
}

// NewTask builds a Ready task wrapping fn.
func NewTask(name string, fn func()) *Task {
	return &Task{
		id:   newTaskID(),
		name: name,
		fn:   fn,
		join: NewJoinState(),
	}
}

func (t *Task) ID() TaskId          { return t.id }
func (t *Task) Name() string        { return t.name }
func (t *Task) State() TaskState    { return t.state }
func (t *Task) JoinState() *JoinState { return t.join }

// Run executes the task's callable synchronously on the calling goroutine
// (the worker that popped or stole it) and marks its JoinState complete.
func (t *Task) Run() {
	t.state = TaskRunning
	if t.fn != nil {
		t.fn()
	}
	t.state = TaskCompleted
	t.join.MarkComplete()
}

// JoinHandle is returned by Spawn; Join blocks, IsFinished polls.
type JoinHandle struct {
	taskID TaskId
	state  *JoinState
	err    error
}

func newJoinHandle(id TaskId, state *JoinState) *JoinHandle {
	return &JoinHandle{taskID: id, state: state}
}

// TaskID returns the spawned task's identifier.
func (h *JoinHandle) TaskID() TaskId { return h.taskID }

// IsFinished is a non-blocking completion check.
func (h *JoinHandle) IsFinished() bool { return h.state.IsComplete() }

// Join blocks until the task completes. It returns a non-nil error only for a
// handle produced by Spawn after Shutdown (spec.md §9's documented choice;
// see Scheduler.Spawn).
func (h *JoinHandle) Join() error {
	h.state.WaitBlocking()
	return h.err
}

// JoinFuture adapts a JoinState to the async poll protocol: Poll registers
// wake and reports whether the task is already done.
type JoinFuture struct {
	state *JoinState
}

// NewJoinFuture wraps state for polling.
func NewJoinFuture(state *JoinState) *JoinFuture {
	return &JoinFuture{state: state}
}

// Poll reports true (ready) immediately if the task has completed;
// otherwise it registers wake to be invoked exactly once on completion and
// reports false (pending), mirroring original_source's Future::poll.
func (f *JoinFuture) Poll(wake func()) bool {
	return f.state.RegisterWaker(wake)
}
