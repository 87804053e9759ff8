package service

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// AcceptLogin is the payload sent when a login challenge is accepted.
type AcceptLogin struct {
	Subject     string
	Remember    bool
	RememberFor int
}

// AcceptConsent is the payload sent when a consent challenge is accepted.
type AcceptConsent struct {
	GrantScope    []string
	GrantAudience []string
	Remember      bool
	RememberFor   int
}

// Rejection is the OAuth2 error sent when a challenge is rejected.
type Rejection struct {
	Error       string
	Description string
}

// Introspection is the subset of token introspection the API relies on.
type Introspection struct {
	Active   bool
	Subject  string
	ClientID string
	Scope    string
}

// AuthorizationServer is the admin API of the OAuth2/OIDC server that issues
// challenges. Implementations map an unknown challenge to
// domainerrors.ErrChallengeNotFound, an already handled or expired one to
// domainerrors.ErrChallengeExpired, and transport failures to
// domainerrors.ErrUpstreamUnavailable. Accept and reject calls return the
// redirect URL the browser must follow.
type AuthorizationServer interface {
	GetLoginRequest(ctx context.Context, challenge string) (*entity.LoginChallenge, error)
	AcceptLoginRequest(ctx context.Context, challenge string, body AcceptLogin) (string, error)
	RejectLoginRequest(ctx context.Context, challenge string, body Rejection) (string, error)

	GetConsentRequest(ctx context.Context, challenge string) (*entity.ConsentChallenge, error)
	AcceptConsentRequest(ctx context.Context, challenge string, body AcceptConsent) (string, error)
	RejectConsentRequest(ctx context.Context, challenge string, body Rejection) (string, error)

	GetLogoutRequest(ctx context.Context, challenge string) (*entity.LogoutChallenge, error)
	AcceptLogoutRequest(ctx context.Context, challenge string) (string, error)

	// IntrospectToken reports whether an access token is active and whom it belongs to.
	IntrospectToken(ctx context.Context, token string) (*Introspection, error)

	// RevokeLoginSessions ends every remembered login session of a subject.
	RevokeLoginSessions(ctx context.Context, subject string) error
}
