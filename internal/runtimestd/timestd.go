package runtimestd

import "time"

var timeTable = newHandleTable[time.Time]()

// Now implements time.now: a handle to the current instant.
func Now() uint64 {
	return timeTable.alloc(time.Now())
}

// Sleep implements time.sleep.
func Sleep(milliseconds int64) {
	if milliseconds <= 0 {
		return
	}
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}

// Since implements time.since: milliseconds elapsed since the handled
// instant.
func Since(handle uint64) int64 {
	t, ok := timeTable.get(handle)
	if !ok {
		return 0
	}
	return time.Since(t).Milliseconds()
}

// Format implements time.format using layout as a Go reference-time layout
// string (the teacher's closest stdlib equivalent to chrono's format specs).
func Format(handle uint64, layout string) string {
	t, ok := timeTable.get(handle)
	if !ok {
		return ""
	}
	return t.Format(layout)
}

// Parse implements time.parse, returning a handle to the zero time (ok=false)
// on a malformed value rather than propagating a Go error across the FFI
// boundary.
func Parse(layout, value string) (uint64, bool) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return timeTable.alloc(time.Time{}), false
	}
	return timeTable.alloc(t), true
}

// After implements time.after: a handle to the instant milliseconds past the
// handled one.
func After(handle uint64, milliseconds int64) uint64 {
	t, ok := timeTable.get(handle)
	if !ok {
		t = time.Now()
	}
	return timeTable.alloc(t.Add(time.Duration(milliseconds) * time.Millisecond))
}
