package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all local key material handling for the encryption
// engine. It knows nothing about the network, the chat service, or users.
// Its only job is deriving and protecting keys.
//
// Scheme:
//
//	Salt   = GenerateSalt()                       (once per local user)
//	DBKey  = DeriveDatabaseKey(uid, salt)         (deterministic, per user)
//	SK     = GenerateSessionKey()                 (once per session)
//	Blob   = WrapKey(SK, DBKey)                   (stored at rest)
type KeyChainService interface {
	// GenerateSalt generates a random salt (16 bytes / 128 bits).
	// The salt is not secret; it is stored in the local database in the
	// clear. It makes database keys unique across installs even for the
	// same uid.
	GenerateSalt() ([]byte, error)

	// DeriveDatabaseKey derives the per-user database encryption key from
	// the chat uid and salt using HKDF-SHA512. The output is 64 bytes; the
	// first 32 are used as the AES-256 key-wrapping key. Deterministic for
	// a given (uid, salt) pair, so the key survives process restarts
	// without itself being stored.
	DeriveDatabaseKey(uid string, salt []byte) []byte

	// GenerateSessionKey generates a random symmetric session key
	// (32 bytes / 256 bits). Session keys never leave the engine
	// unwrapped.
	GenerateSessionKey() ([]byte, error)

	// WrapKey encrypts key with kek via AES-256-GCM.
	// The result (Nonce + Ciphertext) is safe to store at rest —
	// without the kek it is indistinguishable from random noise.
	WrapKey(key, kek []byte) ([]byte, error)

	// UnwrapKey reverses WrapKey. It expects the input blob in the format
	// nonce || ciphertext. Returns the original key or an error if
	// authentication fails (wrong kek or corrupted blob).
	UnwrapKey(blob, kek []byte) ([]byte, error)

	// Seal encrypts plaintext with key via AES-256-GCM and returns
	// nonce || ciphertext.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. Returns an error if the key
	// is wrong or the ciphertext is corrupted (authentication-tag
	// mismatch).
	Open(blob, key []byte) ([]byte, error)
}
