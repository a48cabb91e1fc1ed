package runtimestd

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// The global scheduler (internal/task.Global) is a process-wide singleton
// that outlives any single test, so its worker goroutines are not leaks.
// TestMain snapshots the goroutines already running once that singleton has
// been forced into existence, then only fails on anything new afterward.
func TestMain(m *testing.M) {
	globalScheduler()
	opt := goleak.IgnoreCurrent()
	goleak.VerifyTestMain(m, opt)
}

func TestSpawnTask_JoinWaitsForCompletion(t *testing.T) {
	var ran int32
	h := SpawnTask(func() { atomic.StoreInt32(&ran, 1) })
	JoinTask(h)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}

func TestSpawnTask_DetachDoesNotBlock(t *testing.T) {
	done := make(chan struct{})
	h := SpawnTask(func() { close(done) })
	DetachTask(h)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached task never ran")
	}
}

func TestStringChannel_SendRecvRoundTrip(t *testing.T) {
	h := NewStringChannel()
	defer CloseChannel(h)

	require.True(t, SendString(h, "hello"))
	v, ok := RecvString(h)
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestIntChannel_CloseUnblocksPendingRecv(t *testing.T) {
	h := NewIntChannel()
	result := make(chan struct {
		v  int64
		ok bool
	}, 1)

	go func() {
		v, ok := RecvInt(h)
		result <- struct {
			v  int64
			ok bool
		}{v, ok}
	}()

	// Give the receiver a moment to block before closing.
	time.Sleep(20 * time.Millisecond)
	CloseChannel(h)

	select {
	case r := <-result:
		assert.False(t, r.ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Recv never unblocked after Close")
	}
}

func TestFloatChannel_SendRecvRoundTrip(t *testing.T) {
	h := NewFloatChannel()
	defer CloseChannel(h)

	require.True(t, SendFloat(h, 3.5))
	v, ok := RecvFloat(h)
	require.True(t, ok)
	assert.InDelta(t, 3.5, v, 0.0001)
}

func TestChannelOps_UnknownHandleReportFailure(t *testing.T) {
	const bogus = uint64(999999)
	assert.False(t, SendString(bogus, "x"))
	assert.False(t, SendInt(bogus, 1))
	assert.False(t, SendFloat(bogus, 1))

	_, ok := RecvString(bogus)
	assert.False(t, ok)
	_, ok = RecvInt(bogus)
	assert.False(t, ok)
	_, ok = RecvFloat(bogus)
	assert.False(t, ok)

	// Closing an already-unknown handle across all three tables is a no-op.
	CloseChannel(bogus)
}

func TestCloseChannel_IdsAreUniqueAcrossChannelKinds(t *testing.T) {
	s := NewStringChannel()
	i := NewIntChannel()
	f := NewFloatChannel()
	assert.NotEqual(t, s, i)
	assert.NotEqual(t, i, f)
	assert.NotEqual(t, s, f)

	CloseChannel(s)
	CloseChannel(i)
	CloseChannel(f)
}
