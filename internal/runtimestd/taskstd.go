package runtimestd

import "sync/atomic"

// taskstd wires spec.md §4.7's task.* entry points to the already-implemented
// work-stealing scheduler in internal/task, grounded on
// original_source/src/runtime/stdlib/task.rs's otter_task_* bridge (one
// shared HandleId space across the three typed channel registries, joined
// via next_handle_id there and nextChannelID here).

var joinHandles = newHandleTable[*joinWrapper]()

type joinWrapper struct {
	handle joinedTask
}

// joinedTask is satisfied by *task.JoinHandle; declared as an interface so
// this file doesn't need to import internal/task's concrete type into every
// signature.
type joinedTask interface {
	Join() error
}

// SpawnTask implements task.spawn: schedules callback on the global
// scheduler and returns a handle for task.join/task.detach.
func SpawnTask(callback func()) uint64 {
	h := globalScheduler().Spawn("task.spawn", callback)
	return joinHandles.alloc(&joinWrapper{handle: h})
}

// JoinTask implements task.join: blocks until the spawned callback returns,
// then forgets the handle.
func JoinTask(handle uint64) {
	w, ok := joinHandles.get(handle)
	if !ok {
		return
	}
	_ = w.handle.Join()
	joinHandles.release(handle)
}

// DetachTask implements task.detach: forgets the handle without waiting.
func DetachTask(handle uint64) {
	joinHandles.release(handle)
}

// SleepTask implements task.sleep.
func SleepTask(milliseconds int64) {
	Sleep(milliseconds)
}

var nextChannelID uint64

func newChannelID() uint64 { return atomic.AddUint64(&nextChannelID, 1) }
