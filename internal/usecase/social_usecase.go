package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialLinkResult tells which user an external identity resolved to.
type SocialLinkResult struct {
	UserID  uuid.UUID
	Created bool // A new password-less user was created.
	Linked  bool // A new social account was attached to a user.
}

// SocialLinkUsecase maps external identities to local users.
type SocialLinkUsecase interface {
	LinkOrCreate(ctx context.Context, identity entity.SocialIdentity) (*SocialLinkResult, error)
}

// SocialCallbackInput is what the provider sends back to the callback URL.
type SocialCallbackInput struct {
	Provider entity.ProviderType
	Code     string
	State    string
	Error    string
}

// SocialLoginUsecase drives login challenges through an external identity provider.
type SocialLoginUsecase interface {
	// AuthURL returns the provider URL that starts the flow for a login challenge.
	AuthURL(ctx context.Context, provider entity.ProviderType, loginChallenge string) (string, error)
	// Callback finishes the flow and returns the redirect issued by the authorization server.
	Callback(ctx context.Context, input SocialCallbackInput) (string, error)
}
