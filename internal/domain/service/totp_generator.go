package service

import "time"

// TOTPGenerator implements time-based one-time passwords.
type TOTPGenerator interface {
	// GenerateSecret returns a fresh random secret encoded as unpadded base32.
	GenerateSecret() (string, error)

	// ProvisioningURI builds the otpauth:// URI for authenticator apps.
	ProvisioningURI(secret, accountName string) (string, error)

	// Validate reports whether code matches the secret at t within the allowed skew.
	Validate(secret, code string, t time.Time) bool
}
