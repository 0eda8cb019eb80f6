// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine defines the cryptographic session provider boundary and
// ships [LocalEngine], an implementation holding AES-256-GCM session keys in
// an encrypted local store.
//
// The session-resolution logic depends only on the [Engine] and [Session]
// interfaces, so the local implementation can be swapped for a hosted
// key-management provider without touching the resolver.
package engine

import (
	"context"

	"github.com/MKhiriev/go-chat-seal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine provisions the device identity and mints, stores, and retrieves
// encryption sessions. All session handles returned by one Engine instance
// belong to the same local device identity.
type Engine interface {
	// CreateIdentity provisions the device's cryptographic identity from a
	// signup token. Idempotent: when an identity already exists it is
	// returned unchanged and the token is not inspected. Returns
	// [ErrInvalidSignupToken] when the token fails validation.
	CreateIdentity(ctx context.Context, signupToken, deviceName, displayName string) (models.IdentityInfo, error)

	// CurrentIdentity returns the provisioned identity, or nil when
	// CreateIdentity has not run on this device yet.
	CurrentIdentity() *models.IdentityInfo

	// CreateSession mints a new session naming recipientIDs (identity ids)
	// as participants and persists its wrapped key locally. Requires a
	// provisioned identity.
	CreateSession(ctx context.Context, recipientIDs []string) (Session, error)

	// RetrieveSession returns the session with the given id. With useCache
	// the engine may serve a recently unwrapped handle without touching
	// the store. Returns [ErrSessionNotFound] for unknown ids.
	RetrieveSession(ctx context.Context, sessionID string, useCache bool) (Session, error)

	// RetrieveSessionFromMessage recovers the session that produced the
	// given encrypted message text by parsing the session id out of its
	// envelope. Returns [ErrMalformedEnvelope] when the text is not an
	// envelope, [ErrSessionNotFound] when the id is unknown.
	RetrieveSessionFromMessage(ctx context.Context, encryptedText string) (Session, error)

	// SessionIDFromFile parses the session id out of an encrypted file
	// envelope without decrypting it.
	SessionIDFromFile(data []byte) (string, error)

	// Close releases the engine's local store.
	Close() error
}

// ClearFile is a decrypted file payload with its original name restored from
// the envelope.
type ClearFile struct {
	Filename string
	Data     []byte
}

// Session is one directional encryption session. Handles are immutable and
// safe for concurrent use.
type Session interface {
	// ID returns the provider-assigned session identifier.
	ID() string

	// EncryptMessage encrypts clear text into a self-describing envelope
	// that names this session's id.
	EncryptMessage(clearText string) (string, error)

	// DecryptMessage reverses EncryptMessage. Returns [ErrWrongSession]
	// when the envelope names a different session id.
	DecryptMessage(encryptedText string) (string, error)

	// EncryptFile encrypts data into a file envelope carrying this
	// session's id and the original filename.
	EncryptFile(data []byte, filename string) ([]byte, error)

	// DecryptFile reverses EncryptFile.
	DecryptFile(data []byte) (ClearFile, error)
}
