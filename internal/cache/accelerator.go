package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
)

// accelerated is one in-memory mirror of a disk-resident cache entry.
type accelerated struct {
	entry    *Entry
	cachedAt int64 // UnixNano, atomic
}

// Accelerator is a lock-free, xxhash-keyed in-memory mirror of the on-disk
// cache, sitting in front of Manager.Lookup so that repeated builds of the
// same key within a process's lifetime skip the metadata-file read (Lookup
// still stats the binary on an accelerator hit). This adapts the teacher's sync.Map +
// atomic-counter + TTL-cleanup technique from
// internal/cache/metrics_cache.go's three-tier content/symbol/parser cache
// down to the single key space a content-addressed artifact cache actually
// has.
type Accelerator struct {
	entries sync.Map // map[uint64]*accelerated

	hits   int64
	misses int64
	stores int64

	ttl time.Duration
}

// NewAccelerator builds an Accelerator whose entries are considered stale
// after ttl (zero means entries never expire on their own — the cache
// fingerprint already changes whenever inputs do, so staleness here is only
// about bounding memory across a long-running driver process).
func NewAccelerator(ttl time.Duration) *Accelerator {
	return &Accelerator{ttl: ttl}
}

func hashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Get returns the in-memory entry for key, if present and not expired.
func (a *Accelerator) Get(key string) (*Entry, bool) {
	v, ok := a.entries.Load(hashKey(key))
	if !ok {
		atomic.AddInt64(&a.misses, 1)
		return nil, false
	}
	cached := v.(*accelerated)
	if a.ttl > 0 && time.Since(time.Unix(0, atomic.LoadInt64(&cached.cachedAt))) > a.ttl {
		a.entries.Delete(hashKey(key))
		atomic.AddInt64(&a.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&a.hits, 1)
	return cached.entry, true
}

// Put mirrors entry into the accelerator under key.
func (a *Accelerator) Put(key string, entry *Entry) {
	a.entries.Store(hashKey(key), &accelerated{entry: entry, cachedAt: time.Now().UnixNano()})
	atomic.AddInt64(&a.stores, 1)
}

// Stats reports the accelerator's hit/miss/store counters.
type Stats struct {
	Hits   int64
	Misses int64
	Stores int64
}

// Stats returns a snapshot of the accelerator's counters.
func (a *Accelerator) Stats() Stats {
	return Stats{
		Hits:   atomic.LoadInt64(&a.hits),
		Misses: atomic.LoadInt64(&a.misses),
		Stores: atomic.LoadInt64(&a.stores),
	}
}
