package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
)

const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 128
)

type passwordPolicy struct {
	cfg config.PasswordStrengthConfig
}

// NewPasswordPolicy builds the policy applied on registration and reset confirmation.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policy := config.PasswordStrengthConfig{}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MinLength <= 0 {
		policy.MinLength = defaultMinPasswordLength
	}
	if policy.MaxLength <= 0 {
		policy.MaxLength = defaultMaxPasswordLength
	}

	return &passwordPolicy{cfg: policy}
}

// Validate checks length in characters and the required character classes.
func (p *passwordPolicy) Validate(password string) error {
	length := utf8.RuneCountInString(password)
	if length < p.cfg.MinLength {
		return domainerrors.ErrPasswordPolicy.WithDetails(fmt.Sprintf("password must be at least %d characters long", p.cfg.MinLength))
	}
	if length > p.cfg.MaxLength {
		return domainerrors.ErrPasswordPolicy.WithDetails(fmt.Sprintf("password must be at most %d characters long", p.cfg.MaxLength))
	}

	var upper, lower, number, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			number = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	switch {
	case p.cfg.RequireUppercase && !upper:
		return domainerrors.ErrPasswordPolicy.WithDetails("password must contain at least one uppercase letter")
	case p.cfg.RequireLowercase && !lower:
		return domainerrors.ErrPasswordPolicy.WithDetails("password must contain at least one lowercase letter")
	case p.cfg.RequireNumbers && !number:
		return domainerrors.ErrPasswordPolicy.WithDetails("password must contain at least one number")
	case p.cfg.RequireSpecial && !special:
		return domainerrors.ErrPasswordPolicy.WithDetails("password must contain at least one special character")
	}

	return nil
}
