package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-seal/internal/config"
	"github.com/MKhiriev/go-chat-seal/internal/crypto"
	"github.com/MKhiriev/go-chat-seal/internal/logger"
	"github.com/MKhiriev/go-chat-seal/internal/store"
	"github.com/MKhiriev/go-chat-seal/internal/utils"
	"github.com/MKhiriev/go-chat-seal/models"
	"github.com/golang-jwt/jwt/v5"
)

// LocalEngine implements [Engine] with AES-256-GCM session keys wrapped
// under a per-user database key. The database key is derived from the chat
// uid and a random salt on first start and re-derived on every start, so it
// is never stored itself.
type LocalEngine struct {
	uid       string
	signupKey string
	cacheTTL  time.Duration

	keychain crypto.KeyChainService
	store    store.EngineStore
	uuids    *utils.UUIDGenerator
	logger   *logger.Logger

	dbKey []byte

	mu       sync.RWMutex
	identity *models.IdentityInfo
	handles  map[string]handleEntry
}

type handleEntry struct {
	session Session
	addedAt time.Time
}

// NewLocalEngine bootstraps the engine for the given chat uid: it loads (or
// mints and persists) the database-key salt, derives the database key, and
// loads the device identity when one was provisioned earlier.
func NewLocalEngine(ctx context.Context, uid string, cfg config.Engine, keychain crypto.KeyChainService, st store.EngineStore, log *logger.Logger) (*LocalEngine, error) {
	salt, err := st.DatabaseSalt(ctx, uid)
	switch {
	case errors.Is(err, store.ErrSaltNotFound):
		if salt, err = keychain.GenerateSalt(); err != nil {
			return nil, fmt.Errorf("generate database salt: %w", err)
		}
		if err = st.SaveDatabaseSalt(ctx, uid, salt); err != nil {
			return nil, fmt.Errorf("save database salt: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("load database salt: %w", err)
	}

	e := &LocalEngine{
		uid:       uid,
		signupKey: cfg.SignupKey,
		cacheTTL:  cfg.SessionCacheTTL,
		keychain:  keychain,
		store:     st,
		uuids:     utils.NewUUIDGenerator(),
		logger:    log,
		dbKey:     keychain.DeriveDatabaseKey(uid, salt)[:32],
		handles:   make(map[string]handleEntry),
	}

	identity, err := st.Identity(ctx, uid)
	switch {
	case err == nil:
		e.identity = &identity
	case !errors.Is(err, store.ErrIdentityNotFound):
		return nil, fmt.Errorf("load identity: %w", err)
	}

	return e, nil
}

// CreateIdentity implements [Engine]. The signup token's subject claim, when
// present, becomes the identity id; otherwise the chat uid is used.
func (e *LocalEngine) CreateIdentity(ctx context.Context, signupToken, deviceName, displayName string) (models.IdentityInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.identity != nil {
		return *e.identity, nil
	}

	subject, err := e.validateSignupToken(signupToken)
	if err != nil {
		return models.IdentityInfo{}, err
	}
	if subject == "" {
		subject = e.uid
	}
	if displayName == "" {
		displayName = deviceName
	}

	identity := models.IdentityInfo{
		UserID:      subject,
		DeviceID:    e.uuids.Generate(),
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}

	if err = e.store.SaveIdentity(ctx, e.uid, identity); err != nil {
		return models.IdentityInfo{}, fmt.Errorf("save identity: %w", err)
	}

	e.identity = &identity
	e.logger.Info().
		Str("identity_id", identity.UserID).
		Str("device_id", identity.DeviceID).
		Msg("identity provisioned")

	return identity, nil
}

// validateSignupToken checks the signup JWT. With a signup key configured the
// signature must verify under HS256; without one the token is parsed
// unverified and only its expiry claim is enforced.
func (e *LocalEngine) validateSignupToken(signupToken string) (string, error) {
	if signupToken == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidSignupToken)
	}

	var claims jwt.MapClaims

	if e.signupKey != "" {
		token, err := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"})).
			Parse(signupToken, func(t *jwt.Token) (any, error) {
				return []byte(e.signupKey), nil
			})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidSignupToken, err)
		}
		claims = token.Claims.(jwt.MapClaims)
	} else {
		token, _, err := jwt.NewParser().ParseUnverified(signupToken, jwt.MapClaims{})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidSignupToken, err)
		}
		claims = token.Claims.(jwt.MapClaims)

		exp, err := claims.GetExpirationTime()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidSignupToken, err)
		}
		if exp != nil && exp.Before(time.Now()) {
			return "", fmt.Errorf("%w: token expired", ErrInvalidSignupToken)
		}
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignupToken, err)
	}

	return subject, nil
}

// CurrentIdentity implements [Engine].
func (e *LocalEngine) CurrentIdentity() *models.IdentityInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.identity == nil {
		return nil
	}
	identity := *e.identity
	return &identity
}

// CreateSession implements [Engine]. The session key never touches the store
// unwrapped.
func (e *LocalEngine) CreateSession(ctx context.Context, recipientIDs []string) (Session, error) {
	if e.CurrentIdentity() == nil {
		return nil, ErrNoIdentity
	}

	key, err := e.keychain.GenerateSessionKey()
	if err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	wrapped, err := e.keychain.WrapKey(key, e.dbKey)
	if err != nil {
		return nil, fmt.Errorf("wrap session key: %w", err)
	}

	session := &localSession{
		id:       e.uuids.Generate(),
		key:      key,
		keychain: e.keychain,
	}

	err = e.store.SaveSession(ctx, store.StoredSession{
		ID:         session.id,
		WrappedKey: wrapped,
		Recipients: recipientIDs,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	e.cacheHandle(session)
	e.logger.Debug().
		Str("session_id", session.id).
		Int("recipients", len(recipientIDs)).
		Msg("session created")

	return session, nil
}

// RetrieveSession implements [Engine].
func (e *LocalEngine) RetrieveSession(ctx context.Context, sessionID string, useCache bool) (Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: empty session id", ErrSessionNotFound)
	}

	if useCache {
		if session, ok := e.cachedHandle(sessionID); ok {
			return session, nil
		}
	}

	stored, err := e.store.Session(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	key, err := e.keychain.UnwrapKey(stored.WrappedKey, e.dbKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap session key %s: %w", sessionID, err)
	}

	session := &localSession{id: stored.ID, key: key, keychain: e.keychain}
	e.cacheHandle(session)

	return session, nil
}

// RetrieveSessionFromMessage implements [Engine].
func (e *LocalEngine) RetrieveSessionFromMessage(ctx context.Context, encryptedText string) (Session, error) {
	sid, _, err := parseMessageEnvelope(encryptedText)
	if err != nil {
		return nil, err
	}

	return e.RetrieveSession(ctx, sid, true)
}

// SessionIDFromFile implements [Engine].
func (e *LocalEngine) SessionIDFromFile(data []byte) (string, error) {
	sid, _, err := parseFileEnvelope(data)
	return sid, err
}

// Close implements [Engine].
func (e *LocalEngine) Close() error {
	e.mu.Lock()
	e.handles = make(map[string]handleEntry)
	e.mu.Unlock()

	return e.store.Close()
}

func (e *LocalEngine) cacheHandle(session Session) {
	e.mu.Lock()
	e.handles[session.ID()] = handleEntry{session: session, addedAt: time.Now()}
	e.mu.Unlock()
}

func (e *LocalEngine) cachedHandle(sessionID string) (Session, bool) {
	e.mu.RLock()
	entry, ok := e.handles[sessionID]
	e.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if e.cacheTTL > 0 && time.Since(entry.addedAt) > e.cacheTTL {
		e.mu.Lock()
		delete(e.handles, sessionID)
		e.mu.Unlock()
		return nil, false
	}

	return entry.session, true
}
