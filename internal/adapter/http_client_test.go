// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-chat-seal/internal/config"
	"github.com/MKhiriev/go-chat-seal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpChatAdapter {
	t.Helper()
	cfg := config.Chat{BaseURL: serverURL, APIKey: "test-api-key"}

	a, err := NewHTTPChatAdapter(cfg)
	require.NoError(t, err)
	return a.(*httpChatAdapter)
}

func writeData(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": v}))
}

func TestNewHTTPChatAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPChatAdapter(config.Chat{BaseURL: "   "})
	require.Error(t, err)

	_, err = NewHTTPChatAdapter(config.Chat{BaseURL: "://broken"})
	require.Error(t, err)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/users/alice/auth_tokens", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("apiKey"))

		writeData(t, w, authTokenResponse{
			AuthToken: "tok-123",
			User:      models.User{UID: "alice", Name: "Alice"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", got.UID)
	assert.Equal(t, "Alice", got.Name)

	current := a.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.UID)
}

func TestCurrentUser_CopyIsIsolatedFromCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, authTokenResponse{
			AuthToken: "tok-123",
			User:      models.User{UID: "alice", Metadata: map[string]any{models.MetaKeyIdentityID: "alice-identity"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	logged, err := a.Login(context.Background(), "alice")
	require.NoError(t, err)

	// Правки в копии не должны просачиваться в кэш до успешной записи
	// метаданных: иначе ретрай найдёт непроставленный session id локально.
	first := a.CurrentUser()
	require.NotNil(t, first)
	first.SetSessionID("bob", "unpersisted-sid")
	first.SetIdentityID("rogue-identity")

	second := a.CurrentUser()
	require.NotNil(t, second)
	_, ok := second.SessionIDFor("bob")
	assert.False(t, ok)
	id, ok := second.IdentityID()
	require.True(t, ok)
	assert.Equal(t, "alice-identity", id)

	// Возвращённый Login профиль тоже не разделяет карту с кэшем.
	logged.SetSessionID("carol", "leaked-sid")
	third := a.CurrentUser()
	_, ok = third.SessionIDFor("carol")
	assert.False(t, ok)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad api key"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "alice")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, a.CurrentUser())
}

// ── GetUser ─────────────────────────────────────────────────────────────────

func TestGetUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3/users/bob", r.URL.Path)
		assert.Equal(t, "tok-123", r.Header.Get("authToken"))

		writeData(t, w, models.User{
			UID:      "bob",
			Name:     "Bob",
			Metadata: map[string]any{models.MetaKeyIdentityID: "bob-identity"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.token = "tok-123"

	got, err := a.GetUser(context.Background(), "bob")

	require.NoError(t, err)
	assert.Equal(t, "bob", got.UID)

	id, ok := got.IdentityID()
	require.True(t, ok)
	assert.Equal(t, "bob-identity", id)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such user"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetUser(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── UpdateUserMetadata ──────────────────────────────────────────────────────

func TestUpdateUserMetadata_Success(t *testing.T) {
	user := models.User{
		UID:      "alice",
		Metadata: map[string]any{models.MetaKeyIdentityID: "alice-identity"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v3/users/alice", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "metadata")

		writeData(t, w, user)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.current = &models.User{UID: "alice"}

	got, err := a.UpdateUserMetadata(context.Background(), user)

	require.NoError(t, err)
	id, ok := got.IdentityID()
	require.True(t, ok)
	assert.Equal(t, "alice-identity", id)

	// the cached current user picks up the new metadata
	current := a.CurrentUser()
	require.NotNil(t, current)
	id, ok = current.IdentityID()
	require.True(t, ok)
	assert.Equal(t, "alice-identity", id)
}

func TestUpdateUserMetadata_EmptyUID(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	_, err := a.UpdateUserMetadata(context.Background(), models.User{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── SendMessage ─────────────────────────────────────────────────────────────

func TestSendMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/messages", r.URL.Path)

		var msg models.Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		msg.ID = "msg-1"
		writeData(t, w, msg)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SendMessage(context.Background(), models.Message{
		ReceiverUID:  "bob",
		ReceiverType: models.ReceiverTypeUser,
		Type:         "marker",
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-1", got.ID)
	assert.Equal(t, "bob", got.ReceiverUID)
}

// ── FetchPreviousMessages ───────────────────────────────────────────────────

func TestFetchPreviousMessages_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/messages", r.URL.Path)
		assert.Equal(t, "bob", r.URL.Query().Get("uid"))
		assert.Equal(t, "marker", r.URL.Query().Get("types"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "true", r.URL.Query().Get("hideDeleted"))

		writeData(t, w, []models.Message{
			{ID: "msg-2", SenderUID: "bob"},
			{ID: "msg-1", SenderUID: "alice"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchPreviousMessages(context.Background(), models.MessageFilter{
		PeerUID:     "bob",
		Types:       []string{"marker"},
		Limit:       50,
		HideDeleted: true,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "msg-2", got[0].ID)
}

func TestFetchPreviousMessages_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchPreviousMessages(context.Background(), models.MessageFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}
