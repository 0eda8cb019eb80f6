// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// dbKeyLen is the length of the derived database key in bytes.
	dbKeyLen int
}

// NewKeyChainService constructs a [KeyChainService] producing 64-byte
// (512-bit) database keys, of which the first 32 bytes serve as the AES-256
// wrapping key.
func NewKeyChainService() KeyChainService {
	return &keyChainService{dbKeyLen: 64}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveDatabaseKey implements [KeyChainService]. It expands the chat uid
// with the given salt through HKDF-SHA512 into dbKeyLen bytes of key
// material. The uid is low-entropy input; the random per-install salt is
// what makes the derived key unguessable.
func (k *keyChainService) DeriveDatabaseKey(uid string, salt []byte) []byte {
	r := hkdf.New(sha512.New, []byte(uid), salt, nil)
	key := make([]byte, k.dbKeyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		// HKDF-SHA512 yields up to 255*64 bytes; 64 never exhausts it.
		panic(fmt.Sprintf("hkdf expand: %v", err))
	}
	return key
}

// GenerateSessionKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSessionKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// WrapKey implements [KeyChainService]. It wraps key with kek using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so that
// the unwrap side can locate it: blob = nonce ‖ ciphertext.
func (k *keyChainService) WrapKey(key, kek []byte) ([]byte, error) {
	return k.Seal(key, kek)
}

// UnwrapKey implements [KeyChainService]. It unwraps a blob produced by
// [keyChainService.WrapKey].
func (k *keyChainService) UnwrapKey(blob, kek []byte) ([]byte, error) {
	return k.Open(blob, kek)
}

// Seal implements [KeyChainService].
func (k *keyChainService) Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so Open can split it out.
	ct := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ct...), nil
}

// Open implements [KeyChainService]. The blob must be at least as long as
// the GCM nonce (12 bytes).
func (k *keyChainService) Open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	pt, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return pt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
