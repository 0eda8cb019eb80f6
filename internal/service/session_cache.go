package service

import "sync"

// sessionCache is the process-wide peer-uid -> CompositeSession map for one
// logged-in account, plus a registry of in-flight background fetches kept
// referenced until they complete.
//
// Clear bumps a generation counter. Resolutions stamp the generation at
// start and write back through setIfCurrent, so a result computed before a
// clear cannot resurrect a stale entry afterwards.
type sessionCache struct {
	mu         sync.RWMutex
	generation uint64
	entries    map[string]*CompositeSession

	nextOp   uint64
	inflight map[uint64]struct{}
}

func newSessionCache() *sessionCache {
	return &sessionCache{
		entries:  make(map[string]*CompositeSession),
		inflight: make(map[uint64]struct{}),
	}
}

func (c *sessionCache) get(peerUID string) (*CompositeSession, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cs, ok := c.entries[peerUID]
	return cs, ok
}

func (c *sessionCache) has(peerUID string) bool {
	_, ok := c.get(peerUID)
	return ok
}

// gen returns the current cache generation. Resolutions capture it before
// doing I/O and pass it back to setIfCurrent.
func (c *sessionCache) gen() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// setIfCurrent stores cs for peerUID only when the cache generation still
// equals generation. Returns false when the write was discarded because a
// clear happened in between.
func (c *sessionCache) setIfCurrent(generation uint64, peerUID string, cs *CompositeSession) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		return false
	}
	c.entries[peerUID] = cs
	return true
}

func (c *sessionCache) remove(peerUID string) {
	c.mu.Lock()
	delete(c.entries, peerUID)
	c.mu.Unlock()
}

// clear atomically drops all entries and invalidates every resolution
// stamped with an older generation.
func (c *sessionCache) clear() {
	c.mu.Lock()
	c.entries = make(map[string]*CompositeSession)
	c.generation++
	c.mu.Unlock()
}

// track registers an in-flight background operation and returns its handle.
// The caller must release it with untrack on every exit path.
func (c *sessionCache) track() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextOp++
	c.inflight[c.nextOp] = struct{}{}
	return c.nextOp
}

func (c *sessionCache) untrack(op uint64) {
	c.mu.Lock()
	delete(c.inflight, op)
	c.mu.Unlock()
}

func (c *sessionCache) inflightCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.inflight)
}
