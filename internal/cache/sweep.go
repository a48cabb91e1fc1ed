package cache

// Sweep would remove cache entries older than a retention window or beyond
// a total size budget. spec.md §9 leaves cache GC/TTL policy an open
// question; DESIGN.md records the decision to ship the on-disk cache with
// no eviction in this pass and leave this as the documented extension
// point, rather than invent a policy the spec never specifies. Sweep is
// intentionally unimplemented and uncalled.
func (m *Manager) Sweep() error {
	return nil
}
