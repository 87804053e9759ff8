package social

import (
	"context"
	"strconv"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const githubAPIURL = "https://api.github.com"

type githubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// GitHubProvider handles GitHub OAuth infrastructure operations
type GitHubProvider struct {
	oauth  *oauth2.Config
	apiURL string
}

// NewGitHubProvider creates a new GitHub OAuth provider
func NewGitHubProvider(cfg *config.OAuthProviderConfig) service.SocialProvider {
	return &GitHubProvider{
		oauth:  newOAuth2Config(cfg, github.Endpoint, "read:user", "user:email"),
		apiURL: githubAPIURL,
	}
}

func (p *GitHubProvider) Provider() entity.ProviderType {
	return entity.ProviderTypeGitHub
}

func (p *GitHubProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Identify exchanges the code, reads /user for the stable id and /user/emails for the
// primary verified address, since the public profile email may be hidden or unverified.
func (p *GitHubProvider) Identify(ctx context.Context, code string) (*entity.SocialIdentity, error) {
	client, err := exchange(ctx, p.oauth, code)
	if err != nil {
		return nil, err
	}

	var user githubUser
	if err := getJSON(ctx, client, p.apiURL+"/user", &user); err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("github profile has no id")
	}

	var emails []githubEmail
	if err := getJSON(ctx, client, p.apiURL+"/user/emails", &emails); err != nil {
		return nil, err
	}

	identity := &entity.SocialIdentity{
		Provider:   entity.ProviderTypeGitHub,
		ProviderID: strconv.FormatInt(user.ID, 10),
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			identity.Email = entity.NormalizeEmail(e.Email)

			break
		}
	}

	return identity, nil
}
