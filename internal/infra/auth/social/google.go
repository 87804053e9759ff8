package social

import (
	"context"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleUserInfo is the userinfo v2 response.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// GoogleProvider handles Google OAuth infrastructure operations
type GoogleProvider struct {
	oauth       *oauth2.Config
	userInfoURL string
}

// NewGoogleProvider creates a new Google OAuth provider
func NewGoogleProvider(cfg *config.OAuthProviderConfig) service.SocialProvider {
	return &GoogleProvider{
		oauth:       newOAuth2Config(cfg, google.Endpoint, "openid", "email", "profile"),
		userInfoURL: googleUserInfoURL,
	}
}

func (p *GoogleProvider) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// AuthCodeURL constructs the Google OAuth authorization URL with the given state for CSRF protection
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Identify exchanges the code and reads the userinfo endpoint.
// Unverified emails are dropped.
func (p *GoogleProvider) Identify(ctx context.Context, code string) (*entity.SocialIdentity, error) {
	client, err := exchange(ctx, p.oauth, code)
	if err != nil {
		return nil, err
	}

	var info googleUserInfo
	if err := getJSON(ctx, client, p.userInfoURL, &info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("google profile has no id")
	}

	identity := &entity.SocialIdentity{
		Provider:   entity.ProviderTypeGoogle,
		ProviderID: info.ID,
	}
	if info.VerifiedEmail {
		identity.Email = entity.NormalizeEmail(info.Email)
	}

	return identity, nil
}
