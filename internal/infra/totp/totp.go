// Package totp implements time-based one-time passwords on top of pquerna/otp.
package totp

import (
	"encoding/base32"
	"strings"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	secretBytes   = 20
	defaultPeriod = 30
	defaultSkew   = 1
	defaultIssuer = "Gatekeeper"

	// Generate insists on an account name; secrets are minted before one is attached.
	enrolmentAccount = "enrolment"
)

var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type generator struct {
	issuer string
	skew   uint
}

// New builds the generator from configuration.
func New(cfg *config.Config) service.TOTPGenerator {
	issuer, skew := "", defaultSkew
	if cfg.TwoFactor != nil {
		issuer = cfg.TwoFactor.Issuer
		if cfg.TwoFactor.Skew > 0 {
			skew = cfg.TwoFactor.Skew
		}
	}

	return NewGenerator(issuer, skew)
}

// NewGenerator returns a 6 digit, 30 second SHA1 generator accepting skew steps either side.
func NewGenerator(issuer string, skew int) service.TOTPGenerator {
	if issuer == "" {
		issuer = defaultIssuer
	}
	if skew < 0 {
		skew = 0
	}

	return &generator{issuer: issuer, skew: uint(skew)}
}

func validateOpts(skew uint) totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    defaultPeriod,
		Skew:      skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

func (g *generator) GenerateSecret() (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      g.issuer,
		AccountName: enrolmentAccount,
		SecretSize:  secretBytes,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to generate totp secret")
	}

	return key.Secret(), nil
}

// ProvisioningURI follows the Key Uri Format understood by authenticator apps.
func (g *generator) ProvisioningURI(secret, accountName string) (string, error) {
	raw, err := decodeSecret(secret)
	if err != nil {
		return "", errors.Wrap(err, "invalid totp secret")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      g.issuer,
		AccountName: accountName,
		Period:      defaultPeriod,
		Secret:      raw,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to build provisioning uri")
	}

	return key.URL(), nil
}

// Validate accepts codes of the steps within skew of t.
func (g *generator) Validate(secret, code string, t time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, t.UTC(), validateOpts(g.skew))

	return err == nil && ok
}

// Code returns the code for t; used by tests and tooling.
func Code(secret string, t time.Time) (string, error) {
	code, err := totp.GenerateCodeCustom(secret, t.UTC(), validateOpts(0))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate totp code")
	}

	return code, nil
}

func decodeSecret(secret string) ([]byte, error) {
	normalized := strings.ToUpper(strings.TrimRight(strings.ReplaceAll(secret, " ", ""), "="))

	return secretEncoding.DecodeString(normalized)
}
