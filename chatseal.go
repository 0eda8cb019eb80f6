// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package chatseal layers end-to-end encryption on top of a chat service.
//
// The SDK resolves a shared encryption session per conversation peer using
// nothing but the chat service's own primitives — profile metadata and
// messages — caches it in memory, and dispatches encrypt/decrypt calls to
// the correct directional session. Typical use:
//
//	cfg, _ := config.GetConfig()
//	sdk, err := chatseal.New(context.Background(), cfg, logger.NewLogger("sdk"))
//	if err != nil { ... }
//	defer sdk.Close()
//
//	if err := sdk.SetupAccount(ctx, cfg.App.UID, signupJWT); err != nil { ... }
//	encrypted, err := sdk.EncryptMessage(ctx, "hello", "bob")
package chatseal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-chat-seal/internal/adapter"
	"github.com/MKhiriev/go-chat-seal/internal/config"
	"github.com/MKhiriev/go-chat-seal/internal/crypto"
	"github.com/MKhiriev/go-chat-seal/internal/engine"
	"github.com/MKhiriev/go-chat-seal/internal/logger"
	"github.com/MKhiriev/go-chat-seal/internal/service"
	"github.com/MKhiriev/go-chat-seal/internal/store"
	"github.com/MKhiriev/go-chat-seal/internal/workers"
	"github.com/MKhiriev/go-chat-seal/models"
)

// encryptedFileSuffix is appended to the input path by EncryptFilePath;
// DecryptFilePath strips it again when present.
const encryptedFileSuffix = ".sealed"

// SDK is the public entry point. One SDK instance serves one logged-in chat
// account. All methods are safe for concurrent use.
type SDK struct {
	cfg config.Config

	chat       adapter.ChatAdapter
	engine     engine.Engine
	encryption service.EncryptionService
	warmJob    service.SessionWarmJob

	logger *logger.Logger
}

// New wires the SDK from configuration: the sqlite-backed engine store under
// cfg.Engine.DataDir, the local crypto engine, the HTTP chat adapter, and
// the session-resolution services. The chat account cfg.App.UID is logged in
// and the cache prewarm job is started.
func New(ctx context.Context, cfg config.Config, log *logger.Logger) (*SDK, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	chat, err := adapter.NewHTTPChatAdapter(cfg.Chat)
	if err != nil {
		return nil, err
	}

	return newWith(ctx, cfg, chat, log)
}

// newWith finishes construction with an already built chat adapter. Split
// out so tests can inject a transport double.
func newWith(ctx context.Context, cfg config.Config, chat adapter.ChatAdapter, log *logger.Logger) (*SDK, error) {
	if _, err := chat.Login(ctx, cfg.App.UID); err != nil {
		return nil, fmt.Errorf("chat login for %s: %w", cfg.App.UID, err)
	}

	dbPath := filepath.Join(cfg.Engine.DataDir, cfg.App.UID+".db")
	db, err := store.NewConnectSQLite(ctx, dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("open engine store: %w", err)
	}

	eng, err := engine.NewLocalEngine(ctx, cfg.App.UID, cfg.Engine, crypto.NewKeyChainService(), store.NewEngineStateRepository(db, log), log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap engine: %w", err)
	}

	svcs := service.NewServices(cfg.App, chat, eng, log)
	workers.NewWorkers(service.NewWarmWorker(ctx, svcs.WarmJob, cfg.Engine.WarmInterval)).Run()

	return &SDK{
		cfg:        cfg,
		chat:       chat,
		engine:     eng,
		encryption: svcs.Encryption,
		warmJob:    svcs.WarmJob,
		logger:     log,
	}, nil
}

// SetupAccount provisions the cryptographic identity for uid and publishes
// its id into the user's profile metadata. Idempotent. uid must match the
// account the SDK was constructed for.
func (s *SDK) SetupAccount(ctx context.Context, uid, signupToken string) error {
	local := s.chat.CurrentUser()
	if local == nil || local.UID != uid {
		return fmt.Errorf("setup account: uid %q does not match the authenticated user", uid)
	}

	return s.encryption.SetupAccount(ctx, signupToken)
}

// EncryptMessage encrypts clearText for peerUID.
func (s *SDK) EncryptMessage(ctx context.Context, clearText, peerUID string) (string, error) {
	return s.encryption.EncryptMessage(ctx, clearText, peerUID)
}

// DecryptMessage decrypts msg.Text. The message's sender uid decides which
// directional session is used, so messages authored by the local account
// decrypt as well as messages received from the peer.
func (s *SDK) DecryptMessage(ctx context.Context, msg models.Message) (string, error) {
	return s.encryption.DecryptMessage(ctx, msg)
}

// EncryptFile encrypts an in-memory file payload for peerUID. The filename
// travels inside the encrypted envelope and is restored on decryption.
func (s *SDK) EncryptFile(ctx context.Context, data []byte, filename, peerUID string) ([]byte, error) {
	return s.encryption.EncryptFile(ctx, data, filename, peerUID)
}

// DecryptFile decrypts an encrypted file attached to msg and returns its
// original name and content.
func (s *SDK) DecryptFile(ctx context.Context, msg models.Message, data []byte) (string, []byte, error) {
	clear, err := s.encryption.DecryptFile(ctx, msg, data)
	if err != nil {
		return "", nil, err
	}
	return clear.Filename, clear.Data, nil
}

// EncryptFilePath encrypts the file at path for peerUID and writes the
// result next to it with the ".sealed" suffix. Returns the output path.
func (s *SDK) EncryptFilePath(ctx context.Context, path, peerUID string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	encrypted, err := s.encryption.EncryptFile(ctx, data, filepath.Base(path), peerUID)
	if err != nil {
		return "", err
	}

	outPath := path + encryptedFileSuffix
	if err = os.WriteFile(outPath, encrypted, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}

	return outPath, nil
}

// DecryptFilePath decrypts the encrypted file at path and writes the clear
// content into the same directory under the filename recorded in the
// envelope. Returns the output path.
func (s *SDK) DecryptFilePath(ctx context.Context, msg models.Message, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	clear, err := s.encryption.DecryptFile(ctx, msg, data)
	if err != nil {
		return "", err
	}

	name := clear.Filename
	if name == "" {
		name = filepath.Base(trimEncryptedSuffix(path))
	}

	outPath := filepath.Join(filepath.Dir(path), name)
	if err = os.WriteFile(outPath, clear.Data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}

	return outPath, nil
}

// HasSession reports whether peerUID has a cached session. No I/O.
func (s *SDK) HasSession(peerUID string) bool {
	return s.encryption.HasSession(peerUID)
}

// RemoveSession evicts the session cached for peerUID and withdraws its id
// from the published session map.
func (s *SDK) RemoveSession(ctx context.Context, peerUID string) error {
	return s.encryption.RemoveSession(ctx, peerUID)
}

// ClearEncryptionSessions drops every cached session, typically on logout or
// account switch.
func (s *SDK) ClearEncryptionSessions() {
	s.encryption.ClearSessions()
}

// Close stops the background warm job and releases the engine's local store.
func (s *SDK) Close() error {
	s.warmJob.Stop()
	s.encryption.ClearSessions()

	if err := s.engine.Close(); err != nil {
		return fmt.Errorf("close engine: %w", err)
	}
	return nil
}

func trimEncryptedSuffix(path string) string {
	if filepath.Ext(path) == encryptedFileSuffix {
		return path[:len(path)-len(encryptedFileSuffix)]
	}
	return path
}
