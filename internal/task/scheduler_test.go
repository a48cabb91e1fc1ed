package task

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain ensures no worker goroutines leak past a test that forgets to
// Shutdown+Wait its scheduler.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s := New(SchedulerConfig{MaxWorkers: 4})
	t.Cleanup(func() {
		s.Shutdown()
		s.Wait()
	})
	return s
}

func TestSpawn_RunsAndJoins(t *testing.T) {
	s := newTestScheduler(t)
	var ran int32
	h := s.Spawn("t1", func() { atomic.StoreInt32(&ran, 1) })
	require.NoError(t, h.Join())
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
	assert.True(t, h.IsFinished())
}

func TestSpawn_ManyTasksAllComplete(t *testing.T) {
	s := newTestScheduler(t)
	const n = 500
	var counter int64
	handles := make([]*JoinHandle, n)
	for i := 0; i < n; i++ {
		handles[i] = s.Spawn("", func() { atomic.AddInt64(&counter, 1) })
	}
	for _, h := range handles {
		require.NoError(t, h.Join())
	}
	assert.Equal(t, int64(n), atomic.LoadInt64(&counter))

	snap := s.Metrics().Snapshot()
	assert.Equal(t, uint64(n), snap.TasksSpawned)
	assert.Equal(t, uint64(n), snap.TasksCompleted)
}

func TestSpawn_AfterShutdownReturnsError(t *testing.T) {
	s := New(SchedulerConfig{MaxWorkers: 2})
	s.Shutdown()
	s.Wait()

	h := s.Spawn("late", func() { t.Fatal("must not run after shutdown") })
	assert.True(t, h.IsFinished())
	require.Error(t, h.Join())
}

func TestJoinFuture_PollReportsPendingThenReady(t *testing.T) {
	s := newTestScheduler(t)
	gate := make(chan struct{})
	h := s.Spawn("gated", func() { <-gate })

	future := NewJoinFuture(h.state)
	woken := make(chan struct{}, 1)
	ready := future.Poll(func() { woken <- struct{}{} })
	assert.False(t, ready)

	close(gate)
	select {
	case <-woken:
	case <-time.After(2 * time.Second):
		t.Fatal("waker never invoked")
	}
	assert.True(t, future.Poll(func() {}))
}

func TestBackoff_EscalatesAndCompletes(t *testing.T) {
	var bo backoff
	for i := 0; i < spinLimit; i++ {
		assert.False(t, bo.IsCompleted())
		bo.Spin()
	}
	for i := 0; i < snoozeLimit; i++ {
		bo.Snooze()
	}
	assert.True(t, bo.IsCompleted())
}
