package service

import "errors"

var (
	ErrPeerIdentifierMissing  = errors.New("peer identifier missing")
	ErrNotAuthenticated       = errors.New("local user not authenticated")
	ErrIdentityNotProvisioned = errors.New("identity not provisioned")

	ErrRemoteLookupFailed = errors.New("remote lookup failed")
	ErrRemoteWriteFailed  = errors.New("remote write failed")

	ErrSessionRetrievalFailed = errors.New("session retrieval failed")
	ErrSessionCreationFailed  = errors.New("session creation failed")
	ErrDirectionUnavailable   = errors.New("session direction unavailable")
)
