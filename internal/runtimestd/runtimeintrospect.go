package runtimestd

import (
	"fmt"
	goruntime "runtime"
)

// Version is the toolchain version string this runtime reports through
// runtime.version; it is deliberately independent of the compiler's own
// cache-fingerprint version string (internal/cache owns that one).
const Version = "0.1.0"

// Gos implements runtime.gos: the number of live goroutines backing the
// process, the closest stdlib analogue to the original's green-thread count.
func Gos() int64 {
	return int64(goruntime.NumGoroutine())
}

// CPUCount implements runtime.cpu_count.
func CPUCount() int64 {
	return int64(goruntime.NumCPU())
}

// Memory implements runtime.memory: bytes currently held by the Go heap
// backing this process (includes both the compiler-adjacent host process
// and, once cmd/otterruntime is linked in, the executing program).
func Memory() int64 {
	var stats goruntime.MemStats
	goruntime.ReadMemStats(&stats)
	return int64(stats.HeapAlloc)
}

// CollectGarbage implements runtime.collect_garbage.
func CollectGarbage() {
	goruntime.GC()
}

// Stats implements runtime.stats: a one-line human-readable snapshot.
func Stats() string {
	var stats goruntime.MemStats
	goruntime.ReadMemStats(&stats)
	return fmt.Sprintf("goroutines=%d heap_alloc=%d gc_cycles=%d",
		goruntime.NumGoroutine(), stats.HeapAlloc, stats.NumGC)
}

// RuntimeVersionString implements runtime.version.
func RuntimeVersionString() string {
	return Version
}
