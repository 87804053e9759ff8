// Package vault encrypts secrets at rest with AES-256-GCM.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

const keySize = 32

var ErrCiphertextTooShort = errors.New("ciphertext too short")

type aesGCMVault struct {
	aead cipher.AEAD
}

// New decodes the configured key once and builds the vault.
func New(cfg *config.Config) (service.SecretVault, error) {
	key, err := cfg.EncryptionKeyBytes()
	if err != nil {
		return nil, err
	}

	return NewAESGCM(key)
}

// NewAESGCM builds a vault from a raw 32-byte key.
func NewAESGCM(key []byte) (service.SecretVault, error) {
	if len(key) != keySize {
		return nil, errors.Errorf("encryption key must be %d bytes, got %d", keySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "aes.NewCipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "cipher.NewGCM")
	}

	return &aesGCMVault{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns nonce||ciphertext.
func (v *aesGCMVault) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, v.aead.NonceSize(), v.aead.NonceSize()+len(plaintext)+v.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}

	return v.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (v *aesGCMVault) Decrypt(sealed []byte) ([]byte, error) {
	nonceSize := v.aead.NonceSize()
	if len(sealed) < nonceSize+v.aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := v.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt secret")
	}

	return plaintext, nil
}
