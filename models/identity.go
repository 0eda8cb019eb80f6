package models

import "time"

// IdentityInfo describes a provisioned cryptographic identity as reported by
// the encryption provider. UserID is the provider-side identity id, distinct
// from the chat-service uid.
type IdentityInfo struct {
	// UserID is the provider-assigned identity id.
	UserID string `json:"user_id"`

	// DeviceID identifies the device the identity was provisioned on.
	DeviceID string `json:"device_id"`

	// DisplayName is the human-readable label given at provisioning time,
	// conventionally the chat uid.
	DisplayName string `json:"display_name"`

	// CreatedAt is when the identity was provisioned.
	CreatedAt time.Time `json:"created_at"`
}
