package chatseal

import (
	"context"

	"github.com/MKhiriev/go-chat-seal/models"
)

// Callback variants of the blocking operations. Each runs its blocking
// counterpart on a new goroutine and invokes the callback exactly once with
// identical semantics. The callback runs on the SDK's goroutine; callers
// owning an event loop must hop back themselves.

// SetupAccountAsync is the callback form of SetupAccount.
func (s *SDK) SetupAccountAsync(ctx context.Context, uid, signupToken string, callback func(error)) {
	go func() {
		callback(s.SetupAccount(ctx, uid, signupToken))
	}()
}

// EncryptMessageAsync is the callback form of EncryptMessage.
func (s *SDK) EncryptMessageAsync(ctx context.Context, clearText, peerUID string, callback func(string, error)) {
	go func() {
		callback(s.EncryptMessage(ctx, clearText, peerUID))
	}()
}

// DecryptMessageAsync is the callback form of DecryptMessage.
func (s *SDK) DecryptMessageAsync(ctx context.Context, msg models.Message, callback func(string, error)) {
	go func() {
		callback(s.DecryptMessage(ctx, msg))
	}()
}

// EncryptFileAsync is the callback form of EncryptFile.
func (s *SDK) EncryptFileAsync(ctx context.Context, data []byte, filename, peerUID string, callback func([]byte, error)) {
	go func() {
		callback(s.EncryptFile(ctx, data, filename, peerUID))
	}()
}

// DecryptFileAsync is the callback form of DecryptFile.
func (s *SDK) DecryptFileAsync(ctx context.Context, msg models.Message, data []byte, callback func(string, []byte, error)) {
	go func() {
		callback(s.DecryptFile(ctx, msg, data))
	}()
}

// EncryptFilePathAsync is the callback form of EncryptFilePath.
func (s *SDK) EncryptFilePathAsync(ctx context.Context, path, peerUID string, callback func(string, error)) {
	go func() {
		callback(s.EncryptFilePath(ctx, path, peerUID))
	}()
}

// DecryptFilePathAsync is the callback form of DecryptFilePath.
func (s *SDK) DecryptFilePathAsync(ctx context.Context, msg models.Message, path string, callback func(string, error)) {
	go func() {
		callback(s.DecryptFilePath(ctx, msg, path))
	}()
}

// RemoveSessionAsync is the callback form of RemoveSession.
func (s *SDK) RemoveSessionAsync(ctx context.Context, peerUID string, callback func(error)) {
	go func() {
		callback(s.RemoveSession(ctx, peerUID))
	}()
}
