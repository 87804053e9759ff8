// Package social implements authorization-code login against external identity providers.
package social

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"golang.org/x/oauth2"
)

const maxProfileBytes = 1 << 20

// Registry holds the providers that have credentials configured.
type Registry struct {
	providers map[entity.ProviderType]service.SocialProvider
}

// NewRegistry builds every provider configured under oauth.
func NewRegistry(cfg *config.Config) *Registry {
	registry := &Registry{providers: make(map[entity.ProviderType]service.SocialProvider)}
	if cfg.OAuth == nil {
		return registry
	}

	if cfg.OAuth.Google.Configured() {
		registry.Register(NewGoogleProvider(cfg.OAuth.Google))
	}
	if cfg.OAuth.GitHub.Configured() {
		registry.Register(NewGitHubProvider(cfg.OAuth.GitHub))
	}

	return registry
}

// Register adds or replaces a provider.
func (r *Registry) Register(provider service.SocialProvider) {
	r.providers[provider.Provider()] = provider
}

// Get returns the provider or ErrOAuthProviderNotConfigured.
func (r *Registry) Get(provider entity.ProviderType) (service.SocialProvider, error) {
	p, ok := r.providers[provider]
	if !ok {
		return nil, domainerrors.ErrOAuthProviderNotConfigured
	}

	return p, nil
}

func newOAuth2Config(cfg *config.OAuthProviderConfig, endpoint oauth2.Endpoint, scopes ...string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}
}

// exchange trades the code for a token and returns an HTTP client authorised with it.
func exchange(ctx context.Context, oauthCfg *oauth2.Config, code string) (*http.Client, error) {
	if code == "" {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("missing authorization code")
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("code exchange failed: " + err.Error())
	}

	return oauthCfg.Client(ctx, token), nil
}

// getJSON fetches url with the authorised client and decodes the body into out.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build profile request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return domainerrors.ErrOAuthFailed.WrapMessage("profile request failed: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domainerrors.ErrOAuthFailed.WrapMessage("profile request returned " + resp.Status)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProfileBytes)).Decode(out); err != nil {
		return domainerrors.ErrOAuthFailed.WrapMessage("failed to decode profile: " + err.Error())
	}

	return nil
}
