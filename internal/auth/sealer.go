package auth

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Key derivation labels. Each purpose gets an independent key from the
// same configured secret.
const (
	PurposeTokenSealing = "judgment-web/session-token"
	PurposeCSRF         = "judgment-web/csrf"
)

// ErrSealedTooShort is returned by Open for input shorter than a nonce.
var ErrSealedTooShort = errors.New("sealed value too short")

// DeriveKey expands secret into a 32-byte key bound to purpose (HKDF-SHA256).
func DeriveKey(secret, purpose string) ([]byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(purpose))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("auth: derive key: %w", err)
	}
	return key, nil
}

// Sealer encrypts bearer tokens before they reach durable storage.
// Output layout is nonce|ciphertext.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer creates a Sealer from the configured session secret.
func NewSealer(secret string) (*Sealer, error) {
	key, err := DeriveKey(secret, PurposeTokenSealing)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("auth: new cipher: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext with a fresh random nonce.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("auth: nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	n := s.aead.NonceSize()
	if len(sealed) < n {
		return nil, ErrSealedTooShort
	}
	plaintext, err := s.aead.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return nil, fmt.Errorf("auth: open: %w", err)
	}
	return plaintext, nil
}
