// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/util"

	"github.com/go-playground/validator/v10"
)

// emailValidator checks address syntax with the same rules as request binding.
var emailValidator = validator.New()

func validateEmail(email string) error {
	if err := emailValidator.Var(email, "required,email,max=255"); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("a valid email address is required"), err.Error())
	}

	return nil
}

func systemClock() time.Time {
	return time.Now().UTC()
}

func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// verifyTOTPCode decrypts the stored secret and checks code against it at now.
func verifyTOTPCode(vault service.SecretVault, totp service.TOTPGenerator, secret *entity.TwoFactorSecret, code string, now time.Time) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" || secret == nil {
		return false, nil
	}

	plain, err := vault.Decrypt(secret.SecretEncrypted)
	if err != nil {
		return false, errors.Wrap(err, "failed to decrypt two-factor secret")
	}

	return totp.Validate(string(plain), code, now), nil
}

// rateLimitKey keeps raw identifiers such as email addresses out of the limiter's keyspace.
func rateLimitKey(scope, kind, value string) string {
	return scope + ":" + kind + ":" + util.HashOpaqueToken(value)
}

// allowAttempt counts an attempt against every key. The limiter fails open:
// when its backend is unreachable the attempt is let through and a warning logged.
func allowAttempt(ctx context.Context, logger *slog.Logger, limiter service.RateLimiter, limit int, window time.Duration, keys ...string) bool {
	if limiter == nil || limit <= 0 || window <= 0 {
		return true
	}

	allowed := true
	for _, key := range keys {
		ok, err := limiter.Allow(ctx, key, limit, window)
		if err != nil {
			logger.Warn("Rate limiter unavailable, allowing attempt", slog.Any("error", err))

			continue
		}
		if !ok {
			allowed = false
		}
	}

	return allowed
}
