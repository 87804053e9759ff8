// Package hydra adapts the Ory Hydra v2 admin SDK to the authorization server port.
package hydra

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	hydrasdk "github.com/ory/hydra-client-go/v2"
)

const (
	userAgent = "gatekeeper"

	// Only the access token type is accepted at the 2FA endpoints.
	accessTokenType = "access_token"
)

// Client wraps the generated admin API client. It is safe for concurrent use.
type Client struct {
	api    hydrasdk.OAuth2API
	logger *slog.Logger
}

// New builds the client from configuration.
func New(cfg *config.Config, logger *slog.Logger) (service.AuthorizationServer, error) {
	if cfg.Hydra == nil || cfg.Hydra.AdminURL == "" {
		return nil, errors.New("hydra admin url must be provided")
	}

	return NewClient(cfg.Hydra.AdminURL, &http.Client{Timeout: cfg.Hydra.Timeout}, logger), nil
}

// NewClient is the constructor for Client.
func NewClient(adminURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	sdkCfg := hydrasdk.NewConfiguration()
	sdkCfg.Servers = hydrasdk.ServerConfigurations{{URL: strings.TrimRight(adminURL, "/")}}
	sdkCfg.HTTPClient = httpClient
	sdkCfg.UserAgent = userAgent

	return &Client{
		api:    hydrasdk.NewAPIClient(sdkCfg).OAuth2API,
		logger: logger,
	}
}

func (c *Client) GetLoginRequest(ctx context.Context, challenge string) (*entity.LoginChallenge, error) {
	out, resp, err := c.api.GetOAuth2LoginRequest(ctx).LoginChallenge(challenge).Execute()
	if err != nil {
		return nil, c.upstreamError(ctx, "get login request", resp, err)
	}

	return toLoginChallenge(out, challenge), nil
}

func (c *Client) AcceptLoginRequest(ctx context.Context, challenge string, body service.AcceptLogin) (string, error) {
	accept := hydrasdk.NewAcceptOAuth2LoginRequest(body.Subject)
	accept.SetRemember(body.Remember)
	accept.SetRememberFor(int64(body.RememberFor))

	out, resp, err := c.api.AcceptOAuth2LoginRequest(ctx).
		LoginChallenge(challenge).
		AcceptOAuth2LoginRequest(*accept).
		Execute()

	return c.redirect(ctx, "accept login request", out, resp, err)
}

func (c *Client) RejectLoginRequest(ctx context.Context, challenge string, body service.Rejection) (string, error) {
	out, resp, err := c.api.RejectOAuth2LoginRequest(ctx).
		LoginChallenge(challenge).
		RejectOAuth2Request(toRejectRequest(body)).
		Execute()

	return c.redirect(ctx, "reject login request", out, resp, err)
}

func (c *Client) GetConsentRequest(ctx context.Context, challenge string) (*entity.ConsentChallenge, error) {
	out, resp, err := c.api.GetOAuth2ConsentRequest(ctx).ConsentChallenge(challenge).Execute()
	if err != nil {
		return nil, c.upstreamError(ctx, "get consent request", resp, err)
	}

	return toConsentChallenge(out, challenge), nil
}

func (c *Client) AcceptConsentRequest(ctx context.Context, challenge string, body service.AcceptConsent) (string, error) {
	grant := body.GrantScope
	if grant == nil {
		grant = []string{}
	}

	accept := hydrasdk.NewAcceptOAuth2ConsentRequest()
	accept.SetGrantScope(grant)
	if len(body.GrantAudience) > 0 {
		accept.SetGrantAccessTokenAudience(body.GrantAudience)
	}
	accept.SetRemember(body.Remember)
	accept.SetRememberFor(int64(body.RememberFor))

	out, resp, err := c.api.AcceptOAuth2ConsentRequest(ctx).
		ConsentChallenge(challenge).
		AcceptOAuth2ConsentRequest(*accept).
		Execute()

	return c.redirect(ctx, "accept consent request", out, resp, err)
}

func (c *Client) RejectConsentRequest(ctx context.Context, challenge string, body service.Rejection) (string, error) {
	out, resp, err := c.api.RejectOAuth2ConsentRequest(ctx).
		ConsentChallenge(challenge).
		RejectOAuth2Request(toRejectRequest(body)).
		Execute()

	return c.redirect(ctx, "reject consent request", out, resp, err)
}

func (c *Client) GetLogoutRequest(ctx context.Context, challenge string) (*entity.LogoutChallenge, error) {
	out, resp, err := c.api.GetOAuth2LogoutRequest(ctx).LogoutChallenge(challenge).Execute()
	if err != nil {
		return nil, c.upstreamError(ctx, "get logout request", resp, err)
	}

	return toLogoutChallenge(out, challenge), nil
}

func (c *Client) AcceptLogoutRequest(ctx context.Context, challenge string) (string, error) {
	out, resp, err := c.api.AcceptOAuth2LogoutRequest(ctx).LogoutChallenge(challenge).Execute()

	return c.redirect(ctx, "accept logout request", out, resp, err)
}

// IntrospectToken asks the admin API about token; inactive tokens are not an error.
func (c *Client) IntrospectToken(ctx context.Context, token string) (*service.Introspection, error) {
	out, resp, err := c.api.IntrospectOAuth2Token(ctx).Token(token).Execute()
	if err != nil {
		return nil, c.upstreamError(ctx, "introspect token", resp, err)
	}

	tokenUse := out.GetTokenUse()
	active := out.GetActive() && (tokenUse == "" || tokenUse == accessTokenType)

	return &service.Introspection{
		Active:   active,
		Subject:  out.GetSub(),
		ClientID: out.GetClientId(),
		Scope:    out.GetScope(),
	}, nil
}

func (c *Client) RevokeLoginSessions(ctx context.Context, subject string) error {
	resp, err := c.api.RevokeOAuth2LoginSessions(ctx).Subject(subject).Execute()
	if err == nil {
		return nil
	}

	err = c.upstreamError(ctx, "revoke login sessions", resp, err)
	if errors.Is(err, domainerrors.ErrChallengeNotFound) {
		// No session to revoke.
		return nil
	}

	return err
}

// redirect unwraps the redirect_to of an accept or reject call.
func (c *Client) redirect(ctx context.Context, op string, out *hydrasdk.OAuth2RedirectTo, resp *http.Response, err error) (string, error) {
	if err != nil {
		return "", c.upstreamError(ctx, op, resp, err)
	}
	if out == nil || out.GetRedirectTo() == "" {
		return "", domainerrors.ErrUpstreamUnavailable.WrapMessage(fmt.Sprintf("hydra %s returned no redirect", op))
	}

	return out.GetRedirectTo(), nil
}

// upstreamError maps an SDK failure onto the domain error taxonomy.
func (c *Client) upstreamError(ctx context.Context, op string, resp *http.Response, err error) error {
	if resp == nil {
		c.logger.WarnContext(ctx, "hydra request failed",
			slog.String("op", op),
			slog.Any("error", err),
		)

		return domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	status := resp.StatusCode
	if status >= 200 && status <= 299 {
		return domainerrors.ErrUpstreamUnavailable.WrapMessage(fmt.Sprintf("failed to decode hydra %s response: %v", op, err))
	}

	upstream := upstreamErrorCode(err)
	c.logger.WarnContext(ctx, "hydra returned error status",
		slog.String("op", op),
		slog.Int("status", status),
		slog.String("error", upstream),
	)

	return statusError(status, upstream)
}

func upstreamErrorCode(err error) string {
	var apiErr *hydrasdk.GenericOpenAPIError
	if !errors.As(err, &apiErr) {
		return ""
	}
	if model, ok := apiErr.Model().(hydrasdk.ErrorOAuth2); ok {
		return model.GetError()
	}

	return ""
}

func statusError(status int, upstream string) error {
	description := fmt.Sprintf("hydra status %d", status)
	if upstream != "" {
		description += ": " + upstream
	}

	switch status {
	case http.StatusNotFound:
		return domainerrors.ErrChallengeNotFound.WrapMessage(description)
	case http.StatusGone, http.StatusConflict:
		return domainerrors.ErrChallengeExpired.WrapMessage(description)
	default:
		return domainerrors.ErrUpstreamUnavailable.WrapMessage(description)
	}
}
