package auth

import (
	"strings"
	"testing"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy_Defaults(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	assert.NoError(t, policy.Validate("longenough"))
	assert.NoError(t, policy.Validate("Pässphräse"))

	err := policy.Validate("short")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))

	err = policy.Validate(strings.Repeat("a", 129))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))
}

func TestPasswordPolicy_CharacterClasses(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{PasswordStrength: &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}})

	assert.NoError(t, policy.Validate("StrongPass123!"))

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"PASSWORD123!", "lowercase"},
		{"password123!", "uppercase"},
		{"PasswordABC!", "number"},
		{"Password123", "special"},
	}

	for _, tc := range testCases {
		err := policy.Validate(tc.password)
		appErr, ok := err.(*domainerrors.BaseError)
		if assert.True(t, ok, tc.password) {
			assert.Equal(t, "PASSWORD_POLICY", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tc.expectedErr)
		}
	}
}
