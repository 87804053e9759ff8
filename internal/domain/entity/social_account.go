package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an external identity provider.
type ProviderType string

const (
	// ProviderTypeGoogle is Google OAuth2 / OpenID Connect.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeGitHub is GitHub OAuth apps.
	ProviderTypeGitHub ProviderType = "github"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a supported value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeGoogle, ProviderTypeGitHub:
		return true
	default:
		return false
	}
}

// SocialAccount links an external identity to exactly one local User.
// (Provider, ProviderID) is globally unique.
type SocialAccount struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Provider   ProviderType
	ProviderID string // Stable user id at the provider, e.g. Google's 'sub'.
	Email      string // Email reported by the provider, may be empty.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SocialIdentity is what a provider tells us about the person who just signed in.
type SocialIdentity struct {
	Provider   ProviderType
	ProviderID string
	Email      string // Only set when the provider reports it as verified.
}
