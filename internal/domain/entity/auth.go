// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is a single-use, time-bound credential for account recovery.
// Only the SHA-256 hash of the opaque token handed to the user is kept.
type PasswordResetToken struct {
	ID        uuid.UUID  // The unique ID for this token record.
	UserID    uuid.UUID  // Links this token to the User it can recover.
	TokenHash string     // Hex SHA-256 of the raw token.
	ExpiresAt time.Time  // The token is rejected once now is past this instant.
	UsedAt    *time.Time // Set exactly once, when the token is consumed or invalidated.
	CreatedAt time.Time  // Timestamp of when the reset was requested.
}

// IsUsable reports whether the token may still authorize a password change at now.
func (t *PasswordResetToken) IsUsable(now time.Time) bool {
	return t != nil && t.UsedAt == nil && now.Before(t.ExpiresAt)
}

// TwoFactorSecret holds a user's TOTP shared secret, encrypted at rest.
// A record with Enabled=false means setup was started but never confirmed.
type TwoFactorSecret struct {
	UserID          uuid.UUID
	SecretEncrypted []byte
	Enabled         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TwoFactorState is the derived state of a user's second factor.
type TwoFactorState string

const (
	TwoFactorStateNone    TwoFactorState = "none"
	TwoFactorStatePending TwoFactorState = "pending"
	TwoFactorStateEnabled TwoFactorState = "enabled"
)

// State derives the two-factor state from the record. A nil record means none.
func (s *TwoFactorSecret) State() TwoFactorState {
	switch {
	case s == nil || len(s.SecretEncrypted) == 0:
		return TwoFactorStateNone
	case s.Enabled:
		return TwoFactorStateEnabled
	default:
		return TwoFactorStatePending
	}
}

// IsStalePending reports whether an unconfirmed setup is older than ttl at now.
// A non-positive ttl disables the expiry.
func (s *TwoFactorSecret) IsStalePending(now time.Time, ttl time.Duration) bool {
	if s.State() != TwoFactorStatePending || ttl <= 0 {
		return false
	}

	return now.After(s.UpdatedAt.Add(ttl))
}
