package service

import (
	"sync"

	"github.com/MKhiriev/go-chat-seal/internal/engine"
)

// CompositeSession pairs the two directional session handles of one peer
// relationship. The sender handle encrypts/decrypts traffic the local user
// authored; the receiver handle covers traffic authored by the peer. Either
// half may be absent: handles are attached as they are discovered, and a
// missing half is a valid, cacheable state.
//
// Mutation is serialized per instance so concurrent resolutions cannot tear
// a half-attached pair.
type CompositeSession struct {
	mu       sync.RWMutex
	sender   engine.Session
	receiver engine.Session
}

// NewCompositeSession returns a CompositeSession with the given halves;
// either may be nil.
func NewCompositeSession(sender, receiver engine.Session) *CompositeSession {
	return &CompositeSession{sender: sender, receiver: receiver}
}

// Direction returns the handle for the requested direction, or false when
// that half has not been discovered yet.
func (c *CompositeSession) Direction(needSender bool) (engine.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if needSender {
		return c.sender, c.sender != nil
	}
	return c.receiver, c.receiver != nil
}

// SetSender attaches the sender-direction handle.
func (c *CompositeSession) SetSender(s engine.Session) {
	c.mu.Lock()
	c.sender = s
	c.mu.Unlock()
}

// SetReceiver attaches the receiver-direction handle.
func (c *CompositeSession) SetReceiver(s engine.Session) {
	c.mu.Lock()
	c.receiver = s
	c.mu.Unlock()
}

// Empty reports whether neither direction has been discovered. An empty
// CompositeSession is invalid and must not be cached.
func (c *CompositeSession) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sender == nil && c.receiver == nil
}
