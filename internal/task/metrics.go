// Package task implements the process-wide work-stealing task scheduler:
// a shared injector queue, per-worker local deques, join handles, and
// unbounded channels (spec.md §4.6/§4.6a). Grounded on
// original_source/src/runtime/task/{scheduler,task,channel,metrics}.rs.
package task

import (
	"sync/atomic"
)

// RuntimeMetrics holds the scheduler's atomic counters, mirroring
// original_source's TaskRuntimeMetrics.
type RuntimeMetrics struct {
	spawned        int64
	completed      int64
	waiting        int64
	channels       int64
	channelWaiters int64
	channelBacklog int64
}

// NewRuntimeMetrics builds a zeroed RuntimeMetrics.
func NewRuntimeMetrics() *RuntimeMetrics { return &RuntimeMetrics{} }

func (m *RuntimeMetrics) recordSpawn() {
	atomic.AddInt64(&m.spawned, 1)
	atomic.AddInt64(&m.waiting, 1)
}

func (m *RuntimeMetrics) recordCompletion() {
	atomic.AddInt64(&m.completed, 1)
	atomic.AddInt64(&m.waiting, -1)
}

func (m *RuntimeMetrics) registerChannel() {
	atomic.AddInt64(&m.channels, 1)
}

func (m *RuntimeMetrics) recordChannelBacklog(delta int64) {
	if delta != 0 {
		atomic.AddInt64(&m.channelBacklog, delta)
	}
}

func (m *RuntimeMetrics) recordChannelWaiters(delta int64) {
	if delta != 0 {
		atomic.AddInt64(&m.channelWaiters, delta)
	}
}

// MetricsSnapshot is a point-in-time read of every counter.
type MetricsSnapshot struct {
	TasksSpawned        uint64
	TasksCompleted      uint64
	TasksWaiting        uint64
	ChannelsRegistered  uint64
	ChannelWaiters      uint64
	ChannelBacklog      uint64
}

func nonNegative(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// Snapshot reads every counter, clamping the signed waiting/backlog gauges
// at zero the way original_source's snapshot does.
func (m *RuntimeMetrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		TasksSpawned:       uint64(atomic.LoadInt64(&m.spawned)),
		TasksCompleted:     uint64(atomic.LoadInt64(&m.completed)),
		TasksWaiting:       nonNegative(atomic.LoadInt64(&m.waiting)),
		ChannelsRegistered: uint64(atomic.LoadInt64(&m.channels)),
		ChannelWaiters:     nonNegative(atomic.LoadInt64(&m.channelWaiters)),
		ChannelBacklog:     nonNegative(atomic.LoadInt64(&m.channelBacklog)),
	}
}
