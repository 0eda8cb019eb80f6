package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-seal/internal/adapter"
	"github.com/MKhiriev/go-chat-seal/internal/config"
	"github.com/MKhiriev/go-chat-seal/internal/engine"
	"github.com/MKhiriev/go-chat-seal/internal/logger"
	"github.com/MKhiriev/go-chat-seal/models"
)

type encryptionService struct {
	chat     adapter.ChatAdapter
	engine   engine.Engine
	resolver SessionResolver
	cache    *sessionCache

	deviceName string
	logger     *logger.Logger
}

// NewEncryptionService wires the public operation surface over the resolver,
// the crypto engine, and the chat transport.
func NewEncryptionService(appCfg config.App, chat adapter.ChatAdapter, eng engine.Engine, resolver SessionResolver, cache *sessionCache, log *logger.Logger) EncryptionService {
	return &encryptionService{
		chat:       chat,
		engine:     eng,
		resolver:   resolver,
		cache:      cache,
		deviceName: appCfg.DeviceName,
		logger:     log,
	}
}

// SetupAccount implements [EncryptionService]. Provisioning and publication
// are checked independently, so a crash between the two heals on the next
// call.
func (s *encryptionService) SetupAccount(ctx context.Context, signupToken string) error {
	local := s.chat.CurrentUser()
	if local == nil {
		return ErrNotAuthenticated
	}

	identity := s.engine.CurrentIdentity()
	if identity == nil {
		created, err := s.engine.CreateIdentity(ctx, signupToken, s.deviceName, local.Name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIdentityNotProvisioned, err)
		}
		identity = &created
	}

	if published, ok := local.IdentityID(); ok && published == identity.UserID {
		return nil
	}

	local.SetIdentityID(identity.UserID)
	if _, err := s.chat.UpdateUserMetadata(ctx, *local); err != nil {
		return fmt.Errorf("%w: identity id: %v", ErrRemoteWriteFailed, err)
	}

	s.logger.Info().Str("identity_id", identity.UserID).Msg("identity id published to profile metadata")
	return nil
}

// EncryptMessage implements [EncryptionService].
func (s *encryptionService) EncryptMessage(ctx context.Context, clearText, peerUID string) (string, error) {
	session, err := s.directionalSession(ctx, peerUID, true)
	if err != nil {
		return "", err
	}

	return session.EncryptMessage(clearText)
}

// DecryptMessage implements [EncryptionService]. Decrypting a message the
// local user itself sent uses the sender direction; everything else uses the
// receiver direction.
func (s *encryptionService) DecryptMessage(ctx context.Context, msg models.Message) (string, error) {
	peerUID, needSender, err := s.deriveDirection(msg)
	if err != nil {
		return "", err
	}

	session, err := s.directionalSession(ctx, peerUID, needSender)
	if err != nil {
		return "", err
	}

	return session.DecryptMessage(msg.Text)
}

// EncryptFile implements [EncryptionService].
func (s *encryptionService) EncryptFile(ctx context.Context, data []byte, filename, peerUID string) ([]byte, error) {
	session, err := s.directionalSession(ctx, peerUID, true)
	if err != nil {
		return nil, err
	}

	return session.EncryptFile(data, filename)
}

// DecryptFile implements [EncryptionService].
func (s *encryptionService) DecryptFile(ctx context.Context, msg models.Message, data []byte) (engine.ClearFile, error) {
	peerUID, needSender, err := s.deriveDirection(msg)
	if err != nil {
		return engine.ClearFile{}, err
	}

	session, err := s.directionalSession(ctx, peerUID, needSender)
	if err != nil {
		return engine.ClearFile{}, err
	}

	return session.DecryptFile(data)
}

// HasSession implements [EncryptionService].
func (s *encryptionService) HasSession(peerUID string) bool {
	return s.cache.has(peerUID)
}

// RemoveSession implements [EncryptionService]. The cache entry goes first;
// the metadata withdrawal is the durable part and its failure is surfaced.
func (s *encryptionService) RemoveSession(ctx context.Context, peerUID string) error {
	if peerUID == "" {
		return ErrPeerIdentifierMissing
	}

	s.cache.remove(peerUID)

	local := s.chat.CurrentUser()
	if local == nil {
		return ErrNotAuthenticated
	}
	if _, ok := local.SessionIDFor(peerUID); !ok {
		return nil
	}

	local.RemoveSessionID(peerUID)
	if _, err := s.chat.UpdateUserMetadata(ctx, *local); err != nil {
		return fmt.Errorf("%w: session map for %s: %v", ErrRemoteWriteFailed, peerUID, err)
	}

	return nil
}

// ClearSessions implements [EncryptionService].
func (s *encryptionService) ClearSessions() {
	s.cache.clear()
}

// WarmCache implements [EncryptionService]. Mirrors the session map the
// local user has published: each listed peer is resolved into the cache,
// failures are logged and skipped.
func (s *encryptionService) WarmCache(ctx context.Context) error {
	local := s.chat.CurrentUser()
	if local == nil {
		return ErrNotAuthenticated
	}

	for peerUID := range local.SessionIDs() {
		if _, err := s.resolver.Resolve(ctx, peerUID, true); err != nil {
			s.logger.Warn().Err(err).Str("peer", peerUID).Msg("cache warm for peer failed")
		}
	}

	return nil
}

func (s *encryptionService) directionalSession(ctx context.Context, peerUID string, needSender bool) (engine.Session, error) {
	cs, err := s.resolver.Resolve(ctx, peerUID, needSender)
	if err != nil {
		return nil, err
	}

	session, ok := cs.Direction(needSender)
	if !ok {
		return nil, fmt.Errorf("%w: peer %s", ErrDirectionUnavailable, peerUID)
	}

	return session, nil
}

// deriveDirection maps a message onto (counterpart peer, required direction)
// by comparing the authenticated uid against the message's sender uid.
func (s *encryptionService) deriveDirection(msg models.Message) (peerUID string, needSender bool, err error) {
	local := s.chat.CurrentUser()
	if local == nil {
		return "", false, ErrNotAuthenticated
	}

	needSender = msg.SenderUID == local.UID
	if needSender {
		peerUID = msg.ReceiverUID
	} else {
		peerUID = msg.SenderUID
	}
	if peerUID == "" {
		return "", false, ErrPeerIdentifierMissing
	}

	return peerUID, needSender, nil
}
