// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the chat service.
//
// The primary abstraction is [ChatAdapter], which decouples the session
// resolution logic from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPChatAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-seal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_adapter_mock.go -package=mock

// ChatAdapter defines transport-agnostic communication with the chat
// service. Implementations are responsible for serialisation, auth-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ChatAdapter interface {
	// Login authenticates the given uid against the chat service, stores
	// the returned auth token for subsequent requests, and caches the
	// fetched profile as the current user.
	Login(ctx context.Context, uid string) (models.User, error)

	// CurrentUser returns the locally cached profile of the authenticated
	// user, or nil when no login has happened yet. No network call is
	// made; the cached copy is refreshed by Login and by metadata writes
	// for the same uid. The returned profile must be isolated from the
	// cache: mutating it, metadata included, must not affect what later
	// CurrentUser calls observe until a metadata write succeeds.
	CurrentUser() *models.User

	// GetUser fetches the profile of the user with the given uid from the
	// chat service, including its metadata blob.
	GetUser(ctx context.Context, uid string) (models.User, error)

	// UpdateUserMetadata writes the user's full metadata blob back to the
	// chat service. The whole map is replaced on the server, so callers
	// must read-modify-write; concurrent writers can lose updates (last
	// writer wins).
	UpdateUserMetadata(ctx context.Context, user models.User) (models.User, error)

	// SendMessage sends a message and returns it with server-assigned
	// fields populated.
	SendMessage(ctx context.Context, msg models.Message) (models.Message, error)

	// FetchPreviousMessages returns the most recent messages matching the
	// filter, newest first.
	FetchPreviousMessages(ctx context.Context, filter models.MessageFilter) ([]models.Message, error)
}
