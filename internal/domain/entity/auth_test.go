package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetToken_IsUsable(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	used := now.Add(-time.Minute)

	assert.True(t, (&PasswordResetToken{ExpiresAt: now.Add(time.Minute)}).IsUsable(now))
	assert.False(t, (&PasswordResetToken{ExpiresAt: now}).IsUsable(now))
	assert.False(t, (&PasswordResetToken{ExpiresAt: now.Add(time.Minute), UsedAt: &used}).IsUsable(now))
	assert.False(t, (*PasswordResetToken)(nil).IsUsable(now))
}

func TestTwoFactorSecret_State(t *testing.T) {
	now := time.Now()

	var missing *TwoFactorSecret
	assert.Equal(t, TwoFactorStateNone, missing.State())

	pending := &TwoFactorSecret{SecretEncrypted: []byte{1}, UpdatedAt: now.Add(-time.Hour)}
	assert.Equal(t, TwoFactorStatePending, pending.State())
	assert.True(t, pending.IsStalePending(now, 10*time.Minute))
	assert.False(t, pending.IsStalePending(now, 0))

	enabled := &TwoFactorSecret{SecretEncrypted: []byte{1}, Enabled: true, UpdatedAt: now.Add(-time.Hour)}
	assert.Equal(t, TwoFactorStateEnabled, enabled.State())
	assert.False(t, enabled.IsStalePending(now, time.Minute))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}
