package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-seal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_store_mock.go -package=mock

// StoredSession is a session record at rest. WrappedKey is the session's
// symmetric key encrypted under the local database key; it is never stored
// unwrapped.
type StoredSession struct {
	// ID is the session identifier shared with peers via profile metadata.
	ID string

	// WrappedKey is the AES-GCM-wrapped session key blob.
	WrappedKey []byte

	// Recipients lists the identity ids of all session participants.
	Recipients []string

	// CreatedAt is when the session was created locally.
	CreatedAt time.Time
}

// EngineStore is the local persistence boundary of the encryption engine. It
// keeps everything the engine needs to survive a restart: the database-key
// salt, the device identity, and wrapped session keys.
//
// Implementations must return the package sentinel errors
// ([ErrSaltNotFound], [ErrIdentityNotFound], [ErrSessionNotFound]) for
// missing records so callers can distinguish absence from failure with
// errors.Is.
type EngineStore interface {
	// DatabaseSalt returns the database-key salt stored for uid.
	DatabaseSalt(ctx context.Context, uid string) ([]byte, error)

	// SaveDatabaseSalt persists the database-key salt for uid. Called once
	// per local user, on first engine start.
	SaveDatabaseSalt(ctx context.Context, uid string, salt []byte) error

	// Identity returns the device identity provisioned for uid.
	Identity(ctx context.Context, uid string) (models.IdentityInfo, error)

	// SaveIdentity persists the device identity for uid.
	SaveIdentity(ctx context.Context, uid string, info models.IdentityInfo) error

	// Session returns the stored session record with the given id.
	Session(ctx context.Context, sessionID string) (StoredSession, error)

	// SaveSession persists a session record.
	SaveSession(ctx context.Context, session StoredSession) error

	// Close releases the underlying database handle.
	Close() error
}
