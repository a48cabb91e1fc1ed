package task

import "sync"

// Channel is an unbounded, clonable MPMC queue over T, standing in for
// crossbeam_channel::unbounded (original_source/src/runtime/task/channel.rs);
// Go has no unbounded channel primitive, so this is a condition-variable-
// guarded slice. Every Channel value sharing one *channelInner behaves like
// a cloned Rust handle: the underlying queue survives until every clone is
// gone and garbage-collected, since Go has no explicit drop to count.
type Channel[T any] struct {
	inner *channelInner[T]
}

type channelInner[T any] struct {
	mu      sync.Mutex
	cond    *sync.Cond
	items   []T
	closed  bool
	metrics *RuntimeMetrics
}

// NewChannel builds an unmetered Channel.
func NewChannel[T any]() Channel[T] {
	return NewChannelWithMetrics[T](nil)
}

// NewChannelWithMetrics builds a Channel that records backlog/waiter deltas
// on metrics (may be nil).
func NewChannelWithMetrics[T any](metrics *RuntimeMetrics) Channel[T] {
	inner := &channelInner[T]{metrics: metrics}
	inner.cond = sync.NewCond(&inner.mu)
	if metrics != nil {
		metrics.registerChannel()
	}
	return Channel[T]{inner: inner}
}

// Send is non-blocking: it appends v and wakes one blocked Recv.
func (c Channel[T]) Send(v T) {
	c.inner.mu.Lock()
	c.inner.items = append(c.inner.items, v)
	c.inner.mu.Unlock()
	if c.inner.metrics != nil {
		c.inner.metrics.recordChannelBacklog(1)
	}
	c.inner.cond.Signal()
}

// Recv blocks until a value is available or Close has been called on an
// empty channel, in which case it returns (zero, false).
func (c Channel[T]) Recv() (T, bool) {
	c.inner.mu.Lock()
	for len(c.inner.items) == 0 && !c.inner.closed {
		if c.inner.metrics != nil {
			c.inner.metrics.recordChannelWaiters(1)
		}
		c.inner.cond.Wait()
		if c.inner.metrics != nil {
			c.inner.metrics.recordChannelWaiters(-1)
		}
	}
	if len(c.inner.items) == 0 {
		c.inner.mu.Unlock()
		var zero T
		return zero, false
	}
	v := c.inner.items[0]
	c.inner.items = c.inner.items[1:]
	c.inner.mu.Unlock()

	if c.inner.metrics != nil {
		c.inner.metrics.recordChannelBacklog(-1)
	}
	return v, true
}

// TryRecv returns (zero, false) immediately rather than blocking on empty.
func (c Channel[T]) TryRecv() (T, bool) {
	c.inner.mu.Lock()
	if len(c.inner.items) == 0 {
		c.inner.mu.Unlock()
		var zero T
		return zero, false
	}
	v := c.inner.items[0]
	c.inner.items = c.inner.items[1:]
	c.inner.mu.Unlock()

	if c.inner.metrics != nil {
		c.inner.metrics.recordChannelBacklog(-1)
	}
	return v, true
}

// Close marks the channel drained: blocked and future Recv calls on an
// empty channel return immediately instead of blocking forever.
func (c Channel[T]) Close() {
	c.inner.mu.Lock()
	c.inner.closed = true
	c.inner.mu.Unlock()
	c.inner.cond.Broadcast()
}
