package totp

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 appendix B seed "12345678901234567890".
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestCode_RFC6238Vectors(t *testing.T) {
	tests := []struct {
		unix int64
		want string
	}{
		{unix: 59, want: "287082"},
		{unix: 1111111109, want: "081804"},
		{unix: 1234567890, want: "005924"},
	}

	for _, tt := range tests {
		code, err := Code(rfcSecret, time.Unix(tt.unix, 0))
		require.NoError(t, err)
		assert.Equal(t, tt.want, code)
	}
}

func TestGenerator_ValidateSkew(t *testing.T) {
	g := NewGenerator("Gatekeeper", 1)
	now := time.Unix(1700000000, 0)

	code, err := Code(rfcSecret, now)
	require.NoError(t, err)

	assert.True(t, g.Validate(rfcSecret, code, now))
	assert.True(t, g.Validate(rfcSecret, code, now.Add(30*time.Second)))
	assert.True(t, g.Validate(rfcSecret, code, now.Add(-30*time.Second)))
	assert.False(t, g.Validate(rfcSecret, code, now.Add(90*time.Second)))
	assert.False(t, g.Validate(rfcSecret, code, now.Add(-90*time.Second)))
}

func TestGenerator_ValidateRejectsMalformed(t *testing.T) {
	g := NewGenerator("Gatekeeper", 1)
	now := time.Now()

	for _, code := range []string{"", "12345", "1234567", "abcdef", "12 456"} {
		assert.False(t, g.Validate(rfcSecret, code, now), code)
	}

	code, err := Code(rfcSecret, now)
	require.NoError(t, err)
	assert.False(t, g.Validate("not-base32!", code, now))
	assert.True(t, g.Validate(strings.ToLower(rfcSecret), " "+code+" ", now))
}

func TestGenerator_GenerateSecret(t *testing.T) {
	g := NewGenerator("Gatekeeper", 1)

	secret, err := g.GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 32)

	raw, err := decodeSecret(secret)
	require.NoError(t, err)
	assert.Len(t, raw, 20)

	other, err := g.GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestGenerator_ProvisioningURI(t *testing.T) {
	g := NewGenerator("Gatekeeper", 1)

	raw, err := g.ProvisioningURI(rfcSecret, "user@example.com")
	require.NoError(t, err)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "otpauth", parsed.Scheme)
	assert.Equal(t, "totp", parsed.Host)
	assert.Equal(t, "/Gatekeeper:user@example.com", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, rfcSecret, q.Get("secret"))
	assert.Equal(t, "Gatekeeper", q.Get("issuer"))
	assert.Equal(t, "SHA1", q.Get("algorithm"))
	assert.Equal(t, "6", q.Get("digits"))
	assert.Equal(t, "30", q.Get("period"))
}

func TestGenerator_ProvisioningURIRejectsBadSecret(t *testing.T) {
	g := NewGenerator("Gatekeeper", 1)

	_, err := g.ProvisioningURI("not-base32!", "user@example.com")
	assert.Error(t, err)
}

func TestNewGenerator_DefaultIssuer(t *testing.T) {
	g := NewGenerator("", 1)

	raw, err := g.ProvisioningURI(rfcSecret, "user@example.com")
	require.NoError(t, err)
	assert.Contains(t, raw, "issuer=Gatekeeper")
}
