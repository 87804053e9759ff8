// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a local account.
// Its ID is the subject handed to the authorization server.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Normalized primary email, unique across users.
	PasswordHash string    // PHC-encoded digest. Empty for social-only accounts.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account can log in with a local password.
func (u *User) HasPassword() bool {
	return u != nil && u.PasswordHash != ""
}

// Subject returns the identifier used as the authorization server subject.
func (u *User) Subject() string {
	return u.ID.String()
}

// NormalizeEmail trims and lower-cases an email address so that lookups
// and the unique index are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
