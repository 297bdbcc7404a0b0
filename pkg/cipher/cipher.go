// Package cipher encrypts individual consumer fields before they reach the
// database. One Cipher instance owns one 256-bit key for the process
// lifetime; callers pass it by reference instead of reading a global.
package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"lendcore/internal/domain/sentinel"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// nonce per NIST SP 800-38D recommendation for GCM
	nonceSize = 12
)

type Cipher struct {
	aead gocipher.AEAD
}

// New builds a Cipher from 32 bytes of key material.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", sentinel.ErrCryptoFailure, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrCryptoFailure, err)
	}
	aead, err := gocipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrCryptoFailure, err)
	}
	return &Cipher{aead: aead}, nil
}

// GenerateKey returns fresh 32-byte key material. Exposed for the batch
// re-encryption migration tooling; the service itself never rotates keys.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrCryptoFailure, err)
	}
	return key, nil
}

// Encrypt seals plaintext into base64(nonce || ciphertext || tag) with a
// fresh random nonce per call. Empty input passes through unchanged so
// absent optional fields are not encrypted into non-empty blobs.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("%w: %v", sentinel.ErrCryptoFailure, err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any malformed or tampered blob fails with a
// crypto failure; corrupted plaintext is never returned.
func (c *Cipher) Decrypt(blob string) (string, error) {
	if blob == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: bad encoding: %v", sentinel.ErrCryptoFailure, err)
	}
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: blob shorter than nonce", sentinel.ErrCryptoFailure)
	}
	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", sentinel.ErrCryptoFailure)
	}
	return string(plaintext), nil
}
