// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the encryption-session resolution protocol: for
// a given (local user, peer) pair it decides whether a shared session already
// exists — in memory, in either party's profile metadata, or smuggled inside
// a prior marker message — creates one when none does, persists its id for
// future reuse, and caches it with at-most-one-concurrent-resolution
// semantics per peer.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-seal/internal/engine"
	"github.com/MKhiriev/go-chat-seal/models"
)

// SessionResolver produces a usable [CompositeSession] for a peer, with the
// requested direction guaranteed present on success.
type SessionResolver interface {
	// Resolve walks cache -> local metadata -> peer metadata -> legacy
	// marker scan -> session creation until the direction selected by
	// needSender is available. Concurrent calls for the same peer share
	// one in-flight resolution.
	Resolve(ctx context.Context, peerUID string, needSender bool) (*CompositeSession, error)
}

// EncryptionService is the library's operation surface: account setup,
// message and file encryption/decryption, and session bookkeeping. All
// blocking operations take a context; callback variants are provided by the
// root package.
type EncryptionService interface {
	// SetupAccount provisions the device's cryptographic identity from
	// the signup token and publishes its id into the local user's profile
	// metadata. Idempotent: an already provisioned and published identity
	// makes it a no-op.
	SetupAccount(ctx context.Context, signupToken string) error

	// EncryptMessage encrypts clearText for peerUID using the
	// sender-direction session.
	EncryptMessage(ctx context.Context, clearText, peerUID string) (string, error)

	// DecryptMessage decrypts msg.Text. The direction is derived from the
	// message: text the local user sent is decrypted with the sender
	// direction, text received from the peer with the receiver direction.
	DecryptMessage(ctx context.Context, msg models.Message) (string, error)

	// EncryptFile encrypts a file payload for peerUID using the
	// sender-direction session.
	EncryptFile(ctx context.Context, data []byte, filename, peerUID string) ([]byte, error)

	// DecryptFile decrypts an encrypted file attached to msg, using the
	// same direction derivation as DecryptMessage.
	DecryptFile(ctx context.Context, msg models.Message, data []byte) (engine.ClearFile, error)

	// HasSession reports whether a session for peerUID is currently
	// cached. No I/O.
	HasSession(peerUID string) bool

	// RemoveSession evicts the cached session for peerUID and withdraws
	// its id from the local user's published session map.
	RemoveSession(ctx context.Context, peerUID string) error

	// ClearSessions drops all cached sessions atomically. In-flight
	// resolutions started before the clear cannot resurrect entries.
	ClearSessions()

	// WarmCache resolves every peer listed in the local user's published
	// session map into the cache. Individual failures are logged and
	// skipped.
	WarmCache(ctx context.Context) error
}

// SessionWarmJob periodically re-warms the session cache in the background.
type SessionWarmJob interface {
	// Start launches the background warm loop: one immediate warm pass,
	// then one per interval. Stops any previously running job first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited. Safe to call
	// when the job is not running.
	Stop()
}
