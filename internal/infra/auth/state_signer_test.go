package auth

import (
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateSigner(t *testing.T, secret string) *jwtStateSigner {
	t.Helper()

	signer, err := NewJWTStateSigner(&config.Config{OAuth: &config.OAuthConfig{StateSecret: secret}})
	require.NoError(t, err)

	return signer.(*jwtStateSigner)
}

func TestJWTStateSigner_SignAndVerify(t *testing.T) {
	signer := newTestStateSigner(t, "test_state_secret_key_very_long_for_testing")

	token, err := signer.Sign(service.SocialState{LoginChallenge: "lc-1", Provider: entity.ProviderTypeGitHub}, 10*time.Minute)
	require.NoError(t, err)

	state, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "lc-1", state.LoginChallenge)
	assert.Equal(t, entity.ProviderTypeGitHub, state.Provider)
}

func TestJWTStateSigner_Expired(t *testing.T) {
	signer := newTestStateSigner(t, "test_state_secret_key_very_long_for_testing")

	token, err := signer.Sign(service.SocialState{LoginChallenge: "lc", Provider: entity.ProviderTypeGoogle}, time.Minute)
	require.NoError(t, err)

	signer.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = signer.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))
}

func TestJWTStateSigner_ForeignSecret(t *testing.T) {
	issuer := newTestStateSigner(t, "test_state_secret_key_very_long_for_testing")
	verifier := newTestStateSigner(t, "another_state_secret_key_very_long_for_testing")

	token, err := issuer.Sign(service.SocialState{LoginChallenge: "lc", Provider: entity.ProviderTypeGoogle}, time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))
}

func TestJWTStateSigner_RejectsMalformedClaims(t *testing.T) {
	signer := newTestStateSigner(t, "test_state_secret_key_very_long_for_testing")

	_, err := signer.Verify("clearly-not-a-jwt-token-format")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))

	token, err := signer.Sign(service.SocialState{LoginChallenge: "lc", Provider: "facebook"}, time.Minute)
	require.NoError(t, err)
	_, err = signer.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"lc": "lc", "prv": "google", "iss": stateIssuer, "exp": time.Now().Add(time.Minute).Unix()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = signer.Verify(unsigned)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))
}

func TestNewJWTStateSigner_RequiresSecret(t *testing.T) {
	_, err := NewJWTStateSigner(&config.Config{})
	assert.Error(t, err)
}
