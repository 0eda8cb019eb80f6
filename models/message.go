package models

import "time"

// ReceiverTypeUser is the receiver type for one-to-one messages. Group
// receivers are out of scope for session resolution.
const ReceiverTypeUser = "user"

// Message is a chat message as exchanged with the chat service. For text
// messages Text carries the (possibly encrypted) body; for custom messages
// CustomData carries typed key/value payloads such as the legacy session
// marker.
type Message struct {
	// ID is the chat-service message identifier, assigned on send.
	ID string `json:"id,omitempty"`

	// SenderUID is the uid of the account that sent the message.
	SenderUID string `json:"sender_uid"`

	// ReceiverUID is the uid of the receiving account.
	ReceiverUID string `json:"receiver_uid"`

	// ReceiverType is the kind of receiver, currently always
	// [ReceiverTypeUser].
	ReceiverType string `json:"receiver_type"`

	// Type is the message type. Regular text messages leave it empty;
	// legacy session markers use [MarkerMessageType].
	Type string `json:"type,omitempty"`

	// Text is the message body.
	Text string `json:"text,omitempty"`

	// CustomData carries custom-message payloads keyed by well-known keys.
	CustomData map[string]string `json:"custom_data,omitempty"`

	// SentAt is the server-side send timestamp.
	SentAt time.Time `json:"sent_at,omitempty"`
}

// MessageFilter narrows a history fetch. Zero Limit means the service
// default.
type MessageFilter struct {
	// PeerUID restricts results to the conversation with this user.
	PeerUID string

	// Types restricts results to the given message types.
	Types []string

	// Limit caps the number of returned messages, newest first.
	Limit int

	// HideDeleted excludes deleted messages from the results.
	HideDeleted bool
}
