package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	mockService "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type challengeFixture struct {
	kit        *testKit
	authServer *mockService.MockAuthorizationServer
	limiter    *mockService.MockRateLimiter
	service    usecase.ChallengeUsecase
}

func newChallengeFixture(t *testing.T, withLimiter bool) *challengeFixture {
	t.Helper()

	kit := newTestKit(t)
	f := &challengeFixture{
		kit:        kit,
		authServer: mockService.NewMockAuthorizationServer(t),
	}

	params := ChallengeServiceParams{
		TxManager:  kit.txManager(),
		AuthServer: f.authServer,
		Hasher:     kit.hasher,
		Vault:      kit.vault,
		TOTP:       kit.totp,
		Config:     kit.cfg,
		Logger:     kit.logger,
	}
	if withLimiter {
		f.limiter = mockService.NewMockRateLimiter(t)
		params.Limiter = f.limiter
	}
	f.service = NewChallengeService(params)

	return f
}

func TestChallengeService_ResolveLogin_SkipAcceptsWithoutCredentials(t *testing.T) {
	f := newChallengeFixture(t, false)
	ctx := context.Background()

	f.authServer.EXPECT().GetLoginRequest(ctx, "lc-1").
		Return(&entity.LoginChallenge{Challenge: "lc-1", Skip: true, Subject: "subject-1"}, nil)
	f.authServer.EXPECT().AcceptLoginRequest(ctx, "lc-1", service.AcceptLogin{
		Subject:     "subject-1",
		Remember:    false,
		RememberFor: 3600,
	}).Return("https://hydra/continue", nil)

	redirect, err := f.service.ResolveLogin(ctx, usecase.LoginInput{Challenge: "lc-1"})

	require.NoError(t, err)
	assert.Equal(t, "https://hydra/continue", redirect)
}

func TestChallengeService_ResolveLogin_Success(t *testing.T) {
	f := newChallengeFixture(t, true)
	ctx := context.Background()
	user := f.kit.createUser(t, "alice@example.com", testPassword)

	f.authServer.EXPECT().GetLoginRequest(ctx, "lc-1").Return(&entity.LoginChallenge{Challenge: "lc-1"}, nil)
	f.limiter.EXPECT().Allow(ctx, rateLimitKey("login", "email", "alice@example.com"), 5, 15*time.Minute).Return(true, nil)
	f.limiter.EXPECT().Allow(ctx, rateLimitKey("login", "ip", "203.0.113.7"), 5, 15*time.Minute).Return(true, nil)
	f.limiter.EXPECT().Reset(ctx, rateLimitKey("login", "email", "alice@example.com")).Return(nil)
	f.authServer.EXPECT().AcceptLoginRequest(ctx, "lc-1", service.AcceptLogin{
		Subject:     user.ID.String(),
		Remember:    true,
		RememberFor: 3600,
	}).Return("https://hydra/continue", nil)

	redirect, err := f.service.ResolveLogin(ctx, usecase.LoginInput{
		Challenge: "lc-1",
		Email:     " Alice@Example.com",
		Password:  testPassword,
		Remember:  true,
		ClientIP:  "203.0.113.7",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://hydra/continue", redirect)
}

func TestChallengeService_ResolveLogin_CredentialFailures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     *domainerrors.BaseError
	}{
		{name: "wrong password", email: "alice@example.com", password: "Wrong-Pass-1", want: domainerrors.ErrInvalidCredentials},
		{name: "unknown account", email: "nobody@example.com", password: testPassword, want: domainerrors.ErrInvalidCredentials},
		{name: "social-only account", email: "social@example.com", password: testPassword, want: domainerrors.ErrInvalidCredentials},
		{name: "missing password", email: "alice@example.com", password: "", want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newChallengeFixture(t, false)
			ctx := context.Background()
			f.kit.createUser(t, "alice@example.com", testPassword)
			f.kit.createUser(t, "social@example.com", "")

			f.authServer.EXPECT().GetLoginRequest(ctx, "lc-1").Return(&entity.LoginChallenge{Challenge: "lc-1"}, nil)

			_, err := f.service.ResolveLogin(ctx, usecase.LoginInput{Challenge: "lc-1", Email: tt.email, Password: tt.password})

			assertAppError(t, err, tt.want)
			f.authServer.AssertNotCalled(t, "AcceptLoginRequest", mock.Anything, mock.Anything, mock.Anything)
			f.authServer.AssertNotCalled(t, "RejectLoginRequest", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestChallengeService_ResolveLogin_TwoFactor(t *testing.T) {
	f := newChallengeFixture(t, false)
	ctx := context.Background()
	user := f.kit.createUser(t, "totp@example.com", testPassword)
	secret := f.kit.enableTwoFactor(t, user.ID)

	f.authServer.EXPECT().GetLoginRequest(ctx, "lc-1").Return(&entity.LoginChallenge{Challenge: "lc-1"}, nil)

	_, err := f.service.ResolveLogin(ctx, usecase.LoginInput{Challenge: "lc-1", Email: "totp@example.com", Password: testPassword})
	assertAppError(t, err, domainerrors.ErrTotpRequired)

	_, err = f.service.ResolveLogin(ctx, usecase.LoginInput{
		Challenge: "lc-1", Email: "totp@example.com", Password: testPassword, TOTPCode: wrongCode(t, secret, time.Now()),
	})
	assertAppError(t, err, domainerrors.ErrInvalidTotpCode)

	f.authServer.EXPECT().AcceptLoginRequest(ctx, "lc-1", mock.MatchedBy(func(body service.AcceptLogin) bool {
		return body.Subject == user.ID.String()
	})).Return("https://hydra/continue", nil)

	redirect, err := f.service.ResolveLogin(ctx, usecase.LoginInput{
		Challenge: "lc-1",
		Email:     "totp@example.com",
		Password:  testPassword,
		TOTPCode:  currentCode(t, secret, time.Now()),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://hydra/continue", redirect)
}

func TestChallengeService_ResolveLogin_RateLimited(t *testing.T) {
	f := newChallengeFixture(t, true)
	ctx := context.Background()
	f.kit.createUser(t, "alice@example.com", testPassword)

	f.authServer.EXPECT().GetLoginRequest(ctx, "lc-1").Return(&entity.LoginChallenge{Challenge: "lc-1"}, nil)
	f.limiter.EXPECT().Allow(ctx, mock.Anything, 5, 15*time.Minute).Return(false, nil)

	_, err := f.service.ResolveLogin(ctx, usecase.LoginInput{Challenge: "lc-1", Email: "alice@example.com", Password: testPassword})

	assertAppError(t, err, domainerrors.ErrRateLimited)
}

func TestChallengeService_ResolveLogin_LimiterFailsOpen(t *testing.T) {
	f := newChallengeFixture(t, true)
	ctx := context.Background()
	f.kit.createUser(t, "alice@example.com", testPassword)

	f.authServer.EXPECT().GetLoginRequest(ctx, "lc-1").Return(&entity.LoginChallenge{Challenge: "lc-1"}, nil)
	f.limiter.EXPECT().Allow(ctx, mock.Anything, 5, 15*time.Minute).Return(false, errors.New("redis down"))
	f.limiter.EXPECT().Reset(ctx, mock.Anything).Return(errors.New("redis down"))
	f.authServer.EXPECT().AcceptLoginRequest(ctx, "lc-1", mock.Anything).Return("https://hydra/continue", nil)

	redirect, err := f.service.ResolveLogin(ctx, usecase.LoginInput{Challenge: "lc-1", Email: "alice@example.com", Password: testPassword})

	require.NoError(t, err)
	assert.Equal(t, "https://hydra/continue", redirect)
}

func TestChallengeService_ResolveLogin_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *domainerrors.BaseError
	}{
		{name: "unknown challenge", err: domainerrors.ErrChallengeNotFound},
		{name: "handled challenge", err: domainerrors.ErrChallengeExpired},
		{name: "authorization server down", err: domainerrors.ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newChallengeFixture(t, false)
			ctx := context.Background()

			f.authServer.EXPECT().GetLoginRequest(ctx, "lc-1").Return(nil, tt.err)

			_, err := f.service.ResolveLogin(ctx, usecase.LoginInput{Challenge: "lc-1", Email: "a@example.com", Password: "x"})

			assertAppError(t, err, tt.err)
		})
	}
}

func TestChallengeService_ResolveLogin_MissingChallenge(t *testing.T) {
	f := newChallengeFixture(t, false)

	_, err := f.service.ResolveLogin(context.Background(), usecase.LoginInput{Challenge: "  "})

	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestChallengeService_ResolveConsent(t *testing.T) {
	consent := &entity.ConsentChallenge{
		Challenge:         "cc-1",
		Subject:           "subject-1",
		Client:            entity.OAuthClient{ClientID: "app"},
		RequestedScope:    []string{"openid", "profile", "email"},
		RequestedAudience: []string{"api"},
	}

	t.Run("accept grants only requested scopes", func(t *testing.T) {
		f := newChallengeFixture(t, false)
		ctx := context.Background()

		f.authServer.EXPECT().GetConsentRequest(ctx, "cc-1").Return(consent, nil)
		f.authServer.EXPECT().AcceptConsentRequest(ctx, "cc-1", service.AcceptConsent{
			GrantScope:    []string{"openid", "email"},
			GrantAudience: []string{"api"},
			Remember:      true,
			RememberFor:   7200,
		}).Return("https://hydra/consented", nil)

		redirect, err := f.service.ResolveConsent(ctx, usecase.ConsentInput{
			Challenge:  "cc-1",
			Accept:     true,
			GrantScope: []string{"email", "openid", "admin"},
			Remember:   true,
		})

		require.NoError(t, err)
		assert.Equal(t, "https://hydra/consented", redirect)
	})

	t.Run("skip with no scopes grants everything requested", func(t *testing.T) {
		f := newChallengeFixture(t, false)
		ctx := context.Background()
		skipped := *consent
		skipped.Skip = true

		f.authServer.EXPECT().GetConsentRequest(ctx, "cc-1").Return(&skipped, nil)
		f.authServer.EXPECT().AcceptConsentRequest(ctx, "cc-1", service.AcceptConsent{
			GrantScope:    []string{"openid", "profile", "email"},
			GrantAudience: []string{"api"},
			Remember:      true,
			RememberFor:   7200,
		}).Return("https://hydra/consented", nil)

		_, err := f.service.ResolveConsent(ctx, usecase.ConsentInput{Challenge: "cc-1", Accept: true})

		require.NoError(t, err)
	})

	t.Run("reject sends access_denied", func(t *testing.T) {
		f := newChallengeFixture(t, false)
		ctx := context.Background()

		f.authServer.EXPECT().GetConsentRequest(ctx, "cc-1").Return(consent, nil)
		f.authServer.EXPECT().RejectConsentRequest(ctx, "cc-1", mock.MatchedBy(func(r service.Rejection) bool {
			return r.Error == "access_denied"
		})).Return("https://hydra/denied", nil)

		redirect, err := f.service.ResolveConsent(ctx, usecase.ConsentInput{Challenge: "cc-1", Accept: false})

		require.NoError(t, err)
		assert.Equal(t, "https://hydra/denied", redirect)
	})
}

func TestChallengeService_ResolveLogout(t *testing.T) {
	f := newChallengeFixture(t, false)
	ctx := context.Background()

	f.authServer.EXPECT().GetLogoutRequest(ctx, "lo-1").Return(&entity.LogoutChallenge{Challenge: "lo-1", Subject: "s"}, nil)
	f.authServer.EXPECT().AcceptLogoutRequest(ctx, "lo-1").Return("https://app/logged-out", nil)

	redirect, err := f.service.ResolveLogout(ctx, "lo-1")

	require.NoError(t, err)
	assert.Equal(t, "https://app/logged-out", redirect)
}
