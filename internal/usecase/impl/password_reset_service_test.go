package impl

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	mockService "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resetFixture struct {
	kit        *testKit
	notifier   *mockService.MockResetNotifier
	authServer *mockService.MockAuthorizationServer
	service    *passwordResetService
	waited     []time.Duration
}

func newResetFixture(t *testing.T) *resetFixture {
	t.Helper()

	kit := newTestKit(t)
	f := &resetFixture{
		kit:        kit,
		notifier:   mockService.NewMockResetNotifier(t),
		authServer: mockService.NewMockAuthorizationServer(t),
	}

	f.service = NewPasswordResetService(PasswordResetServiceParams{
		TxManager:  kit.txManager(),
		Hasher:     kit.hasher,
		Policy:     kit.policy,
		Notifier:   f.notifier,
		AuthServer: f.authServer,
		Config:     kit.cfg,
		Logger:     kit.logger,
	}).(*passwordResetService)
	f.service.wait = func(_ context.Context, d time.Duration) {
		f.waited = append(f.waited, d)
	}

	return f
}

// requestToken issues a reset for email and returns the raw token from the notice.
func (f *resetFixture) requestToken(t *testing.T, email string) string {
	t.Helper()

	var notice service.PasswordResetNotice
	f.notifier.EXPECT().NotifyPasswordReset(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n service.PasswordResetNotice) { notice = n }).
		Return(nil).Once()

	require.NoError(t, f.service.Request(context.Background(), email))

	link, err := url.Parse(notice.ResetURL)
	require.NoError(t, err)

	return link.Query().Get("token")
}

func TestPasswordResetService_Request_KnownUser(t *testing.T) {
	f := newResetFixture(t)
	user := f.kit.createUser(t, "alice@example.com", testPassword)

	var notice service.PasswordResetNotice
	f.notifier.EXPECT().NotifyPasswordReset(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n service.PasswordResetNotice) { notice = n }).
		Return(nil)

	err := f.service.Request(context.Background(), "ALICE@example.com")

	require.NoError(t, err)
	assert.Equal(t, user.ID, notice.UserID)
	assert.Equal(t, "alice@example.com", notice.Email)
	assert.True(t, strings.HasPrefix(notice.ResetURL, "https://id.example.com/reset?token="))
	assert.WithinDuration(t, time.Now().Add(time.Hour), notice.ExpiresAt, time.Minute)

	token, err := url.Parse(notice.ResetURL)
	require.NoError(t, err)
	raw := token.Query().Get("token")

	// Only the hash is stored.
	require.NoError(t, f.kit.store.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		stored, err := repos.PasswordResetRepo().FindUsableByHashForUpdate(context.Background(), util.HashOpaqueToken(raw), time.Now())
		if err != nil {
			return err
		}
		assert.NotEqual(t, raw, stored.TokenHash)
		return nil
	}))
}

func TestPasswordResetService_Request_UniformForUnknownEmail(t *testing.T) {
	f := newResetFixture(t)
	f.service.cfg.MinResponseTime = 250 * time.Millisecond

	err := f.service.Request(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "NotifyPasswordReset", mock.Anything, mock.Anything)
	require.Len(t, f.waited, 1)
	assert.Greater(t, f.waited[0], time.Duration(0))
}

func TestPasswordResetService_Request_NotifierFailureIsHidden(t *testing.T) {
	f := newResetFixture(t)
	f.kit.createUser(t, "alice@example.com", testPassword)

	f.notifier.EXPECT().NotifyPasswordReset(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := f.service.Request(context.Background(), "alice@example.com")

	require.NoError(t, err)
}

func TestPasswordResetService_Request_InvalidEmail(t *testing.T) {
	f := newResetFixture(t)

	err := f.service.Request(context.Background(), "not-an-email")

	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestPasswordResetService_Request_ThrottledSilently(t *testing.T) {
	f := newResetFixture(t)
	f.kit.createUser(t, "alice@example.com", testPassword)

	limiter := mockService.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, rateLimitKey("reset", "email", "alice@example.com"), 3, time.Hour).Return(false, nil)
	f.service.limiter = limiter

	err := f.service.Request(context.Background(), "alice@example.com")

	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "NotifyPasswordReset", mock.Anything, mock.Anything)
}

func TestPasswordResetService_Confirm_SingleUse(t *testing.T) {
	f := newResetFixture(t)
	user := f.kit.createUser(t, "alice@example.com", testPassword)
	token := f.requestToken(t, "alice@example.com")

	f.authServer.EXPECT().RevokeLoginSessions(mock.Anything, user.ID.String()).Return(nil).Once()

	const newPassword = "Brand-New-Pass-2"
	require.NoError(t, f.service.Confirm(context.Background(), token, newPassword))

	require.NoError(t, f.kit.store.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		updated, err := repos.UserRepo().FindByID(context.Background(), user.ID)
		if err != nil {
			return err
		}
		assert.True(t, f.kit.hasher.Check(newPassword, updated.PasswordHash))
		assert.False(t, f.kit.hasher.Check(testPassword, updated.PasswordHash))
		return nil
	}))

	err := f.service.Confirm(context.Background(), token, "Another-Pass-3")
	assertAppError(t, err, domainerrors.ErrTokenExpiredOrInvalid)
}

func TestPasswordResetService_Confirm_InvalidatesOtherTokens(t *testing.T) {
	f := newResetFixture(t)
	user := f.kit.createUser(t, "alice@example.com", testPassword)
	first := f.requestToken(t, "alice@example.com")
	second := f.requestToken(t, "alice@example.com")

	f.authServer.EXPECT().RevokeLoginSessions(mock.Anything, user.ID.String()).Return(errors.New("hydra down"))

	require.NoError(t, f.service.Confirm(context.Background(), second, "Brand-New-Pass-2"))

	err := f.service.Confirm(context.Background(), first, "Another-Pass-3")
	assertAppError(t, err, domainerrors.ErrTokenExpiredOrInvalid)
}

func TestPasswordResetService_Confirm_ExpiredToken(t *testing.T) {
	f := newResetFixture(t)
	f.kit.createUser(t, "alice@example.com", testPassword)
	token := f.requestToken(t, "alice@example.com")

	f.service.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }

	err := f.service.Confirm(context.Background(), token, "Brand-New-Pass-2")

	assertAppError(t, err, domainerrors.ErrTokenExpiredOrInvalid)
}

func TestPasswordResetService_Confirm_Validation(t *testing.T) {
	f := newResetFixture(t)

	err := f.service.Confirm(context.Background(), "", "Brand-New-Pass-2")
	assertAppError(t, err, domainerrors.ErrValidationFailed)

	err = f.service.Confirm(context.Background(), "token", "short")
	assertAppError(t, err, domainerrors.ErrPasswordPolicy)

	err = f.service.Confirm(context.Background(), "unknown-token", "Brand-New-Pass-2")
	assertAppError(t, err, domainerrors.ErrTokenExpiredOrInvalid)
}

func TestPasswordResetService_Confirm_NoRevokeWhenDisabled(t *testing.T) {
	f := newResetFixture(t)
	f.kit.createUser(t, "alice@example.com", testPassword)
	f.service.cfg.RevokeSessions = false
	token := f.requestToken(t, "alice@example.com")

	require.NoError(t, f.service.Confirm(context.Background(), token, "Brand-New-Pass-2"))
	f.authServer.AssertNotCalled(t, "RevokeLoginSessions", mock.Anything, mock.Anything)
}
