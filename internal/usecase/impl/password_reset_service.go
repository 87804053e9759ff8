package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"
	"gatekeeper/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Hasher     service.PasswordHasher
	Policy     service.PasswordPolicy
	Notifier   service.ResetNotifier
	Limiter    service.RateLimiter
	AuthServer service.AuthorizationServer
	Config     *config.Config
	Logger     *slog.Logger
}

type passwordResetService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	policy     service.PasswordPolicy
	notifier   service.ResetNotifier
	limiter    service.RateLimiter
	authServer service.AuthorizationServer
	cfg        *config.PasswordResetConfig
	redis      *config.RedisConfig
	logger     *slog.Logger
	now        func() time.Time
	wait       func(ctx context.Context, d time.Duration)
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		policy:     params.Policy,
		notifier:   params.Notifier,
		limiter:    params.Limiter,
		authServer: params.AuthServer,
		cfg:        params.Config.PasswordReset,
		redis:      params.Config.Redis,
		logger:     params.Logger,
		now:        systemClock,
		wait:       sleepContext,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Request issues a reset token when email belongs to an account. Known and
// unknown addresses do the same token work and return after the same minimum delay.
func (srv *passwordResetService) Request(ctx context.Context, email string) error {
	started := time.Now()
	defer func() {
		srv.wait(ctx, srv.cfg.MinResponseTime-time.Since(started))
	}()

	email = entity.NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	rawToken, err := util.GenerateOpaqueToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}
	tokenHash := util.HashOpaqueToken(rawToken)

	if !allowAttempt(ctx, srv.log(ctx), srv.limiter, srv.redis.ResetLimit, srv.redis.ResetWindow, rateLimitKey("reset", "email", email)) {
		srv.log(ctx).Warn("Password reset requests throttled", slog.String("email", util.MaskEmail(email)))

		return nil
	}

	now := srv.now()
	var notice *service.PasswordResetNotice
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		token := &entity.PasswordResetToken{
			UserID:    user.ID,
			TokenHash: tokenHash,
			ExpiresAt: now.Add(srv.cfg.TokenTTL),
		}
		if err := repoFactory.PasswordResetRepo().Create(ctx, token); err != nil {
			return errors.Wrap(err, "failed to store reset token")
		}

		resetURL, err := util.AppendQueryParam(srv.cfg.URLBase, "token", rawToken)
		if err != nil {
			return errors.Wrap(err, "failed to build reset url")
		}

		notice = &service.PasswordResetNotice{
			UserID:    user.ID,
			Email:     user.Email,
			ResetURL:  resetURL,
			ExpiresAt: token.ExpiresAt,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to process password reset request", slog.Any("error", err))

		return errors.Wrap(err, "failed to request password reset")
	}

	if notice == nil {
		srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", util.MaskEmail(email)))

		return nil
	}

	// Delivery problems stay server-side; the caller sees the uniform response.
	if err := srv.notifier.NotifyPasswordReset(ctx, *notice); err != nil {
		srv.log(ctx).Error("Failed to hand off password reset notice",
			slog.String("user_id", notice.UserID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// Confirm consumes a usable token, stores the new password and burns every
// other outstanding token of the same user in one transaction.
func (srv *passwordResetService) Confirm(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}
	if err := srv.policy.Validate(newPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	tokenHash := util.HashOpaqueToken(token)
	now := srv.now()

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.PasswordResetRepo()

		resetToken, err := resetRepo.FindUsableByHashForUpdate(ctx, tokenHash, now)
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return errors.Wrap(domainerrors.ErrTokenExpiredOrInvalid, "no usable reset token")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find reset token")
		}

		if err := repoFactory.UserRepo().UpdatePasswordHash(ctx, resetToken.UserID, hash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := resetRepo.MarkUsed(ctx, resetToken.ID, now); err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return errors.Wrap(domainerrors.ErrTokenExpiredOrInvalid, "reset token consumed concurrently")
			}

			return errors.Wrap(err, "failed to consume reset token")
		}

		invalidated, err := resetRepo.InvalidateOutstanding(ctx, resetToken.UserID, now)
		if err != nil {
			return errors.Wrap(err, "failed to invalidate outstanding reset tokens")
		}
		if invalidated > 0 {
			srv.log(ctx).Info("Invalidated outstanding reset tokens",
				slog.String("user_id", resetToken.UserID.String()),
				slog.Int64("count", invalidated),
			)
		}

		userID = resetToken.UserID

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to confirm password reset")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("user_id", userID.String()))

	if srv.cfg.RevokeSessions && srv.authServer != nil {
		if err := srv.authServer.RevokeLoginSessions(ctx, userID.String()); err != nil {
			srv.log(ctx).Warn("Failed to revoke login sessions after password reset",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
