package task

import (
	"runtime"
	"time"
)

// spinLimit is how many Spin() calls a backoff allows before Snooze takes
// over, and snoozeLimit how many Snooze() calls before IsCompleted reports
// true and the caller falls back to a fixed sleep. Mirrors the shape of
// crossbeam_utils::Backoff's spin/yield/park escalation (original_source's
// scheduler.rs) without vendoring a lock-free-queue-specific crate.
const (
	spinLimit   = 6
	snoozeLimit = 10
)

// backoff implements the exponential spin -> snooze -> sleep-100us sequence
// worker_loop retries through when it finds no work anywhere (spec.md §4.6).
type backoff struct {
	count int
}

func (b *backoff) Reset() { b.count = 0 }

// Spin busy-waits a little, yielding the processor without sleeping.
func (b *backoff) Spin() {
	iterations := 1 << uint(min(b.count, spinLimit))
	for i := 0; i < iterations; i++ {
		runtime.Gosched()
	}
	b.count++
}

// Snooze sleeps for a short, increasing duration.
func (b *backoff) Snooze() {
	time.Sleep(time.Duration(min(b.count, snoozeLimit)) * time.Microsecond)
	b.count++
}

// IsCompleted reports whether backoff has escalated past Snooze, meaning
// the caller should fall back to a fixed sleep instead of calling Snooze
// again.
func (b *backoff) IsCompleted() bool {
	return b.count >= spinLimit+snoozeLimit
}
