package models

// User represents a chat-service user profile. Metadata carries arbitrary
// key/value pairs persisted by the chat service; this library uses it to
// publish the user's cryptographic identity id and the peer->session-id map
// under the keys defined in metadata.go.
type User struct {
	// UID is the unique chat-service identifier of the user.
	UID string `json:"uid"`

	// Name is the display name of the user. Non-sensitive.
	Name string `json:"name"`

	// Metadata is the free-form profile metadata blob stored by the chat
	// service. Values decoded from JSON arrive as map[string]any.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Clone returns a copy of the user whose Metadata map is independent of the
// receiver's, nested session maps included. Mutating the clone never leaks
// into the original.
func (u *User) Clone() User {
	out := *u
	if u.Metadata == nil {
		return out
	}

	out.Metadata = make(map[string]any, len(u.Metadata))
	for key, value := range u.Metadata {
		switch m := value.(type) {
		case map[string]string:
			cp := make(map[string]string, len(m))
			for k, v := range m {
				cp[k] = v
			}
			out.Metadata[key] = cp
		case map[string]any:
			cp := make(map[string]any, len(m))
			for k, v := range m {
				cp[k] = v
			}
			out.Metadata[key] = cp
		default:
			out.Metadata[key] = value
		}
	}
	return out
}

// IdentityID returns the provider-assigned cryptographic identity id
// published in the user's metadata, if any.
func (u *User) IdentityID() (string, bool) {
	if u.Metadata == nil {
		return "", false
	}
	id, ok := u.Metadata[MetaKeyIdentityID].(string)
	return id, ok && id != ""
}

// SetIdentityID publishes id under the identity metadata key, allocating the
// metadata map if the profile has none yet.
func (u *User) SetIdentityID(id string) {
	if u.Metadata == nil {
		u.Metadata = make(map[string]any)
	}
	u.Metadata[MetaKeyIdentityID] = id
}

// SessionIDs returns the peer-uid -> session-id map from the user's metadata.
// The map is a copy: mutate it and write it back via SetSessionID, not in
// place. Returns an empty map when the user has published no sessions.
//
// The chat service round-trips metadata through JSON, so the stored map may
// arrive as map[string]any; both shapes are accepted.
func (u *User) SessionIDs() map[string]string {
	out := make(map[string]string)
	if u.Metadata == nil {
		return out
	}
	switch m := u.Metadata[MetaKeySessions].(type) {
	case map[string]string:
		for peer, sid := range m {
			out[peer] = sid
		}
	case map[string]any:
		for peer, v := range m {
			if sid, ok := v.(string); ok {
				out[peer] = sid
			}
		}
	}
	return out
}

// SessionIDFor returns the session id the user has published for peerUID.
func (u *User) SessionIDFor(peerUID string) (string, bool) {
	sid, ok := u.SessionIDs()[peerUID]
	return sid, ok && sid != ""
}

// SetSessionID records sessionID as the user's canonical session for peerUID,
// preserving entries for other peers.
func (u *User) SetSessionID(peerUID, sessionID string) {
	if u.Metadata == nil {
		u.Metadata = make(map[string]any)
	}
	sessions := u.SessionIDs()
	sessions[peerUID] = sessionID
	u.Metadata[MetaKeySessions] = sessions
}

// RemoveSessionID drops the user's published session for peerUID, preserving
// entries for other peers. No-op when none is published.
func (u *User) RemoveSessionID(peerUID string) {
	if u.Metadata == nil {
		return
	}
	sessions := u.SessionIDs()
	delete(sessions, peerUID)
	u.Metadata[MetaKeySessions] = sessions
}
