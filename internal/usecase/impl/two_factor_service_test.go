package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTwoFactorFixture(t *testing.T) (*testKit, *twoFactorService) {
	t.Helper()

	kit := newTestKit(t)
	srv := NewTwoFactorService(TwoFactorServiceParams{
		TxManager: kit.txManager(),
		Hasher:    kit.hasher,
		Vault:     kit.vault,
		TOTP:      kit.totp,
		QRCode:    kit.qrCode,
		Config:    kit.cfg,
		Logger:    kit.logger,
	}).(*twoFactorService)

	return kit, srv
}

func TestTwoFactorService_SetupVerifyDisable(t *testing.T) {
	kit, srv := newTwoFactorFixture(t)
	ctx := context.Background()
	user := kit.createUser(t, "totp@example.com", testPassword)

	out, err := srv.Setup(ctx, user.ID, testPassword)
	require.NoError(t, err)
	assert.Len(t, out.Secret, 32)
	assert.True(t, strings.HasPrefix(out.OTPAuthURI, "otpauth://totp/"))
	assert.Contains(t, out.OTPAuthURI, "secret="+out.Secret)
	assert.True(t, strings.HasPrefix(out.QRCode, "data:image/png;base64,"))
	assert.Equal(t, entity.TwoFactorStatePending, kit.twoFactorState(t, user.ID))

	enabled, err := srv.IsEnabled(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, enabled)

	err = srv.Verify(ctx, user.ID, wrongCode(t, out.Secret, time.Now()))
	assertAppError(t, err, domainerrors.ErrInvalidTotpCode)

	require.NoError(t, srv.Verify(ctx, user.ID, currentCode(t, out.Secret, time.Now())))
	assert.Equal(t, entity.TwoFactorStateEnabled, kit.twoFactorState(t, user.ID))

	enabled, err = srv.IsEnabled(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, enabled)

	err = srv.Verify(ctx, user.ID, currentCode(t, out.Secret, time.Now()))
	assertAppError(t, err, domainerrors.ErrTwoFactorAlreadyEnabled)

	_, err = srv.Setup(ctx, user.ID, testPassword)
	assertAppError(t, err, domainerrors.ErrTwoFactorAlreadyEnabled)

	require.NoError(t, srv.Disable(ctx, user.ID, testPassword, currentCode(t, out.Secret, time.Now())))
	assert.Equal(t, entity.TwoFactorStateNone, kit.twoFactorState(t, user.ID))
}

func TestTwoFactorService_SetupOverwritesPending(t *testing.T) {
	kit, srv := newTwoFactorFixture(t)
	ctx := context.Background()
	user := kit.createUser(t, "totp@example.com", testPassword)

	first, err := srv.Setup(ctx, user.ID, testPassword)
	require.NoError(t, err)
	second, err := srv.Setup(ctx, user.ID, testPassword)
	require.NoError(t, err)
	require.NotEqual(t, first.Secret, second.Secret)

	err = srv.Verify(ctx, user.ID, wrongCode(t, second.Secret, time.Now()))
	assertAppError(t, err, domainerrors.ErrInvalidTotpCode)

	require.NoError(t, srv.Verify(ctx, user.ID, currentCode(t, second.Secret, time.Now())))
}

func TestTwoFactorService_SetupRejects(t *testing.T) {
	kit, srv := newTwoFactorFixture(t)
	ctx := context.Background()
	user := kit.createUser(t, "totp@example.com", testPassword)
	social := kit.createUser(t, "social@example.com", "")

	_, err := srv.Setup(ctx, user.ID, "Wrong-Pass-1")
	assertAppError(t, err, domainerrors.ErrInvalidCredentials)

	_, err = srv.Setup(ctx, social.ID, "")
	assertAppError(t, err, domainerrors.ErrInvalidCredentials)

	_, err = srv.Setup(ctx, uuid.New(), testPassword)
	assertAppError(t, err, domainerrors.ErrUnauthorized)
}

func TestTwoFactorService_VerifyWithoutSetup(t *testing.T) {
	kit, srv := newTwoFactorFixture(t)
	user := kit.createUser(t, "totp@example.com", testPassword)

	err := srv.Verify(context.Background(), user.ID, "123456")

	assertAppError(t, err, domainerrors.ErrTwoFactorNotSetUp)
}

func TestTwoFactorService_VerifyStalePending(t *testing.T) {
	kit, srv := newTwoFactorFixture(t)
	ctx := context.Background()
	user := kit.createUser(t, "totp@example.com", testPassword)

	out, err := srv.Setup(ctx, user.ID, testPassword)
	require.NoError(t, err)

	later := time.Now().UTC().Add(time.Hour)
	srv.now = func() time.Time { return later }

	err = srv.Verify(ctx, user.ID, currentCode(t, out.Secret, later))

	assertAppError(t, err, domainerrors.ErrTwoFactorNotSetUp)
}

func TestTwoFactorService_VerifySkewWindow(t *testing.T) {
	kit, srv := newTwoFactorFixture(t)
	ctx := context.Background()
	user := kit.createUser(t, "totp@example.com", testPassword)

	out, err := srv.Setup(ctx, user.ID, testPassword)
	require.NoError(t, err)

	now := time.Now().UTC()
	srv.now = func() time.Time { return now }

	stale := currentCode(t, out.Secret, now.Add(-90*time.Second))
	for _, step := range []time.Duration{-30 * time.Second, 0, 30 * time.Second} {
		if stale == currentCode(t, out.Secret, now.Add(step)) {
			t.Skip("stale code collides with a code inside the window")
		}
	}

	err = srv.Verify(ctx, user.ID, stale)
	assertAppError(t, err, domainerrors.ErrInvalidTotpCode)

	require.NoError(t, srv.Verify(ctx, user.ID, currentCode(t, out.Secret, now.Add(-30*time.Second))))
}

func TestTwoFactorService_DisableNeedsBothFactors(t *testing.T) {
	kit, srv := newTwoFactorFixture(t)
	ctx := context.Background()
	user := kit.createUser(t, "totp@example.com", testPassword)
	secret := kit.enableTwoFactor(t, user.ID)

	err := srv.Disable(ctx, user.ID, "Wrong-Pass-1", currentCode(t, secret, time.Now()))
	assertAppError(t, err, domainerrors.ErrInvalidCredentials)

	err = srv.Disable(ctx, user.ID, testPassword, wrongCode(t, secret, time.Now()))
	assertAppError(t, err, domainerrors.ErrInvalidTotpCode)

	assert.Equal(t, entity.TwoFactorStateEnabled, kit.twoFactorState(t, user.ID))
}

func TestTwoFactorService_DisableWhenNotEnabled(t *testing.T) {
	kit, srv := newTwoFactorFixture(t)
	ctx := context.Background()
	user := kit.createUser(t, "totp@example.com", testPassword)

	err := srv.Disable(ctx, user.ID, testPassword, "123456")
	assertAppError(t, err, domainerrors.ErrTwoFactorNotSetUp)

	_, err = srv.Setup(ctx, user.ID, testPassword)
	require.NoError(t, err)

	err = srv.Disable(ctx, user.ID, testPassword, "123456")
	assertAppError(t, err, domainerrors.ErrTwoFactorNotSetUp)
}
