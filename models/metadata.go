// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Well-known profile-metadata and message keys shared between all clients of
// an application. They form the wire contract for session discovery: every
// client must read and write the same keys or sessions published by one
// device become invisible to the others.
const (
	// MetaKeyIdentityID is the profile-metadata key under which a user's
	// provider-assigned cryptographic identity id is published.
	MetaKeyIdentityID = "E2E_IDENTITY_ID"

	// MetaKeySessions is the profile-metadata key holding the user's
	// peer-uid -> session-id map.
	MetaKeySessions = "E2E_SESSIONS"

	// MarkerMessageType is the custom message type used by the legacy
	// in-band session discovery flow.
	MarkerMessageType = "E2E_SESSION_MARKER"

	// MarkerPayloadKey is the custom-data key of a marker message whose
	// value is a session-encrypted probe string.
	MarkerPayloadKey = "E2E_ENCRYPTED_TXT"
)
