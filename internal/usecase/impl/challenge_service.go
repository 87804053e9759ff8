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

	"go.uber.org/fx"
)

const (
	rejectAccessDenied       = "access_denied"
	rejectConsentDescription = "The resource owner denied the request"
)

// ChallengeServiceParams holds dependencies for ChallengeService, injected by Fx.
type ChallengeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	AuthServer service.AuthorizationServer
	Hasher     service.PasswordHasher
	Vault      service.SecretVault
	TOTP       service.TOTPGenerator
	Limiter    service.RateLimiter
	Config     *config.Config
	Logger     *slog.Logger
}

// challengeService implements the ChallengeUsecase interface.
type challengeService struct {
	txManager  repository.TransactionManager
	authServer service.AuthorizationServer
	hasher     service.PasswordHasher
	vault      service.SecretVault
	totp       service.TOTPGenerator
	limiter    service.RateLimiter
	hydra      *config.HydraConfig
	redis      *config.RedisConfig
	logger     *slog.Logger
	now        func() time.Time
}

// NewChallengeService is the constructor for challengeService.
func NewChallengeService(params ChallengeServiceParams) usecase.ChallengeUsecase {
	return &challengeService{
		txManager:  params.TxManager,
		authServer: params.AuthServer,
		hasher:     params.Hasher,
		vault:      params.Vault,
		totp:       params.TOTP,
		limiter:    params.Limiter,
		hydra:      params.Config.Hydra,
		redis:      params.Config.Redis,
		logger:     params.Logger,
		now:        systemClock,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *challengeService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// ResolveLogin verifies the submitted credentials and accepts the login challenge.
// On any credential failure the challenge is left untouched so the user can retry.
func (srv *challengeService) ResolveLogin(ctx context.Context, input usecase.LoginInput) (string, error) {
	if strings.TrimSpace(input.Challenge) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("login_challenge is required")
	}

	loginReq, err := srv.authServer.GetLoginRequest(ctx, input.Challenge)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch login request")
	}

	if loginReq.Skip {
		srv.log(ctx).Debug("Login challenge skipped, reusing authenticated session", slog.String("client_id", loginReq.Client.ClientID))

		return srv.acceptLogin(ctx, input.Challenge, loginReq.Subject, false)
	}

	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	emailKey := rateLimitKey("login", "email", email)
	keys := []string{emailKey}
	if input.ClientIP != "" {
		keys = append(keys, rateLimitKey("login", "ip", input.ClientIP))
	}
	if !allowAttempt(ctx, srv.log(ctx), srv.limiter, srv.redis.LoginLimit, srv.redis.LoginWindow, keys...) {
		srv.log(ctx).Warn("Login attempts throttled", slog.String("email", util.MaskEmail(email)))

		return "", errors.Wrap(domainerrors.ErrRateLimited, "too many login attempts")
	}

	var subject string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.authenticate(ctx, repoFactory.UserRepo(), email, input.Password)
		if err != nil {
			return err
		}

		secret, err := repoFactory.TwoFactorRepo().FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, repository.ErrTwoFactorNotFound) {
			return errors.Wrap(err, "failed to load two-factor state")
		}

		if secret.State() == entity.TwoFactorStateEnabled {
			if strings.TrimSpace(input.TOTPCode) == "" {
				return errors.Wrap(domainerrors.ErrTotpRequired, "two-factor code missing")
			}

			ok, err := verifyTOTPCode(srv.vault, srv.totp, secret, input.TOTPCode, srv.now())
			if err != nil {
				return err
			}
			if !ok {
				return errors.Wrap(domainerrors.ErrInvalidTotpCode, "two-factor code mismatch")
			}
		}

		subject = user.Subject()

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.String("email", util.MaskEmail(email)), slog.Any("error", err))

		return "", err
	}

	if srv.limiter != nil {
		if err := srv.limiter.Reset(ctx, emailKey); err != nil {
			srv.log(ctx).Warn("Failed to reset login attempt counter", slog.Any("error", err))
		}
	}

	return srv.acceptLogin(ctx, input.Challenge, subject, input.Remember || srv.hydra.Remember)
}

// authenticate looks up the account and checks the password. Unknown and
// password-less accounts pay for a dummy comparison so timing stays flat.
func (srv *challengeService) authenticate(ctx context.Context, userRepo repository.UserRepository, email, password string) (*entity.User, error) {
	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if user == nil || !user.HasPassword() {
		srv.hasher.CheckDummy(password)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown account or no local password")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return user, nil
}

func (srv *challengeService) acceptLogin(ctx context.Context, challenge, subject string, remember bool) (string, error) {
	redirect, err := srv.authServer.AcceptLoginRequest(ctx, challenge, service.AcceptLogin{
		Subject:     subject,
		Remember:    remember,
		RememberFor: srv.hydra.RememberFor,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to accept login request")
	}

	srv.log(ctx).Info("Login challenge accepted", slog.String("subject", subject))

	return redirect, nil
}

// ResolveConsent grants the requested scopes the user agreed to, or rejects the request.
func (srv *challengeService) ResolveConsent(ctx context.Context, input usecase.ConsentInput) (string, error) {
	if strings.TrimSpace(input.Challenge) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("consent_challenge is required")
	}

	consentReq, err := srv.authServer.GetConsentRequest(ctx, input.Challenge)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch consent request")
	}

	if !input.Accept {
		redirect, err := srv.authServer.RejectConsentRequest(ctx, input.Challenge, service.Rejection{
			Error:       rejectAccessDenied,
			Description: rejectConsentDescription,
		})
		if err != nil {
			return "", errors.Wrap(err, "failed to reject consent request")
		}
		srv.log(ctx).Info("Consent rejected", slog.String("client_id", consentReq.Client.ClientID))

		return redirect, nil
	}

	var scopes []string
	if consentReq.Skip && len(input.GrantScope) == 0 {
		scopes = append([]string{}, consentReq.RequestedScope...)
	} else {
		scopes = consentReq.GrantableScopes(input.GrantScope)
	}

	redirect, err := srv.authServer.AcceptConsentRequest(ctx, input.Challenge, service.AcceptConsent{
		GrantScope:    scopes,
		GrantAudience: consentReq.RequestedAudience,
		Remember:      input.Remember || consentReq.Skip,
		RememberFor:   srv.hydra.ConsentRememberFor,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to accept consent request")
	}

	srv.log(ctx).Info("Consent accepted",
		slog.String("client_id", consentReq.Client.ClientID),
		slog.Any("granted_scope", scopes),
	)

	return redirect, nil
}

// ResolveLogout accepts every logout challenge. Sessions live in the authorization server only.
func (srv *challengeService) ResolveLogout(ctx context.Context, challenge string) (string, error) {
	if strings.TrimSpace(challenge) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("logout_challenge is required")
	}

	logoutReq, err := srv.authServer.GetLogoutRequest(ctx, challenge)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch logout request")
	}

	redirect, err := srv.authServer.AcceptLogoutRequest(ctx, challenge)
	if err != nil {
		return "", errors.Wrap(err, "failed to accept logout request")
	}

	srv.log(ctx).Info("Logout accepted", slog.String("subject", logoutReq.Subject))

	return redirect, nil
}
