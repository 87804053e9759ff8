package service

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
)

// SocialProvider drives the authorization-code flow against an external identity provider.
type SocialProvider interface {
	// Provider returns the provider this adapter serves.
	Provider() entity.ProviderType

	// AuthCodeURL returns the URL the browser is sent to, carrying state.
	AuthCodeURL(state string) string

	// Identify exchanges the authorization code and fetches the user's identity.
	// Email is empty unless the provider marks it verified.
	Identify(ctx context.Context, code string) (*entity.SocialIdentity, error)
}

// SocialState is what travels through the provider in the OAuth state parameter.
type SocialState struct {
	LoginChallenge string
	Provider       entity.ProviderType
}

// StateSigner issues and verifies tamper-proof OAuth state values.
type StateSigner interface {
	Sign(state SocialState, ttl time.Duration) (string, error)

	// Verify returns domainerrors.ErrOAuthStateInvalid for bad, expired or foreign tokens.
	Verify(token string) (*SocialState, error)
}

// SocialProviderRegistry looks up configured providers.
type SocialProviderRegistry interface {
	// Get returns domainerrors.ErrOAuthProviderNotConfigured for unknown or unconfigured providers.
	Get(provider entity.ProviderType) (SocialProvider, error)
}
