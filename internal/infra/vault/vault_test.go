package vault

import (
	"bytes"
	"testing"

	"gatekeeper/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault(t *testing.T) *aesGCMVault {
	t.Helper()

	v, err := NewAESGCM(bytes.Repeat([]byte{7}, keySize))
	require.NoError(t, err)

	return v.(*aesGCMVault)
}

func TestVault_RoundTrip(t *testing.T) {
	v := newTestVault(t)
	secret := []byte("JBSWY3DPEHPK3PXP")

	sealed, err := v.Encrypt(secret)
	require.NoError(t, err)
	assert.Len(t, sealed, v.aead.NonceSize()+len(secret)+v.aead.Overhead())
	assert.False(t, bytes.Contains(sealed, secret))

	opened, err := v.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, secret, opened)
}

func TestVault_FreshNonce(t *testing.T) {
	v := newTestVault(t)

	first, err := v.Encrypt([]byte("same"))
	require.NoError(t, err)
	second, err := v.Encrypt([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVault_RejectsTampering(t *testing.T) {
	v := newTestVault(t)

	sealed, err := v.Encrypt([]byte("secret"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = v.Decrypt(sealed)
	assert.Error(t, err)

	_, err = v.Decrypt([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestVault_WrongKey(t *testing.T) {
	sealed, err := newTestVault(t).Encrypt([]byte("secret"))
	require.NoError(t, err)

	other, err := NewAESGCM(bytes.Repeat([]byte{8}, keySize))
	require.NoError(t, err)

	_, err = other.Decrypt(sealed)
	assert.Error(t, err)
}

func TestNew_FromConfig(t *testing.T) {
	_, err := New(&config.Config{EncryptionKey: "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="})
	require.NoError(t, err)

	_, err = New(&config.Config{EncryptionKey: "c2hvcnQ="})
	assert.Error(t, err)

	_, err = NewAESGCM([]byte("short"))
	assert.Error(t, err)
}
