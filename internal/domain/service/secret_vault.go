package service

// SecretVault encrypts secrets at rest with a key held outside the database.
type SecretVault interface {
	// Encrypt returns nonce||ciphertext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Tampered or truncated input is an error.
	Decrypt(sealed []byte) ([]byte, error)
}
