package impl

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// TwoFactorServiceParams holds dependencies for TwoFactorService, injected by Fx.
type TwoFactorServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Vault     service.SecretVault
	TOTP      service.TOTPGenerator
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

type twoFactorService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	vault     service.SecretVault
	totp      service.TOTPGenerator
	qrCode    service.QRCodeService
	setupTTL  time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewTwoFactorService is the constructor for twoFactorService.
func NewTwoFactorService(params TwoFactorServiceParams) usecase.TwoFactorUsecase {
	return &twoFactorService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		vault:     params.Vault,
		totp:      params.TOTP,
		qrCode:    params.QRCode,
		setupTTL:  params.Config.TwoFactor.SetupTTL,
		logger:    params.Logger,
		now:       systemClock,
	}
}

func (srv *twoFactorService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// loadUser fetches the account behind an authenticated subject.
func (srv *twoFactorService) loadUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "subject has no local account")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// checkPassword runs the hash comparison outside any transaction. Password-less
// accounts pay for a dummy comparison and always fail.
func (srv *twoFactorService) checkPassword(user *entity.User, password string) bool {
	if !user.HasPassword() || password == "" {
		srv.hasher.CheckDummy(password)

		return false
	}

	return srv.hasher.Check(password, user.PasswordHash)
}

// Setup starts enrolment. A pending record is overwritten, an enabled one is left alone.
func (srv *twoFactorService) Setup(ctx context.Context, userID uuid.UUID, password string) (*usecase.TwoFactorSetupOutput, error) {
	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !srv.checkPassword(user, password) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "two-factor setup password mismatch")
	}

	secret, err := srv.totp.GenerateSecret()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate totp secret")
	}

	sealed, err := srv.vault.Encrypt([]byte(secret))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt totp secret")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		twoFactorRepo := repoFactory.TwoFactorRepo()

		current, err := twoFactorRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrTwoFactorNotFound) {
			return errors.Wrap(err, "failed to load two-factor state")
		}
		if current.State() == entity.TwoFactorStateEnabled {
			return errors.Wrap(domainerrors.ErrTwoFactorAlreadyEnabled, "two-factor already enabled")
		}

		return twoFactorRepo.Upsert(ctx, &entity.TwoFactorSecret{
			UserID:          userID,
			SecretEncrypted: sealed,
			Enabled:         false,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up two-factor")
	}

	uri, err := srv.totp.ProvisioningURI(secret, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build provisioning uri")
	}
	qr, err := srv.qrCode.GenerateDataURL(uri)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render provisioning qr code")
	}

	srv.log(ctx).Info("Two-factor setup started", slog.String("user_id", userID.String()))

	return &usecase.TwoFactorSetupOutput{
		Secret:     secret,
		OTPAuthURI: uri,
		QRCode:     qr,
	}, nil
}

// Verify confirms a pending enrolment with a code from the authenticator app.
func (srv *twoFactorService) Verify(ctx context.Context, userID uuid.UUID, code string) error {
	now := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		twoFactorRepo := repoFactory.TwoFactorRepo()

		secret, err := twoFactorRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrTwoFactorNotFound) {
			return errors.Wrap(err, "failed to load two-factor state")
		}

		switch secret.State() {
		case entity.TwoFactorStateNone:
			return errors.Wrap(domainerrors.ErrTwoFactorNotSetUp, "no two-factor setup in progress")
		case entity.TwoFactorStateEnabled:
			return errors.Wrap(domainerrors.ErrTwoFactorAlreadyEnabled, "two-factor already enabled")
		}

		if secret.IsStalePending(now, srv.setupTTL) {
			return errors.Wrap(domainerrors.ErrTwoFactorNotSetUp, "two-factor setup expired")
		}

		ok, err := verifyTOTPCode(srv.vault, srv.totp, secret, code, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(domainerrors.ErrInvalidTotpCode, "two-factor verification code mismatch")
		}

		return twoFactorRepo.Enable(ctx, userID, now)
	})
	if err != nil {
		return errors.Wrap(err, "failed to verify two-factor")
	}

	srv.log(ctx).Info("Two-factor enabled", slog.String("user_id", userID.String()))

	return nil
}

// Disable removes an enabled second factor. Both the password and a current
// code are checked before either result is reported.
func (srv *twoFactorService) Disable(ctx context.Context, userID uuid.UUID, password, code string) error {
	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	passwordOK := srv.checkPassword(user, password)
	now := srv.now()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		twoFactorRepo := repoFactory.TwoFactorRepo()

		secret, err := twoFactorRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrTwoFactorNotFound) {
			return errors.Wrap(err, "failed to load two-factor state")
		}
		if secret.State() != entity.TwoFactorStateEnabled {
			return errors.Wrap(domainerrors.ErrTwoFactorNotSetUp, "two-factor is not enabled")
		}

		codeOK, err := verifyTOTPCode(srv.vault, srv.totp, secret, code, now)
		if err != nil {
			return err
		}

		switch {
		case !passwordOK:
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "two-factor disable password mismatch")
		case !codeOK:
			return errors.Wrap(domainerrors.ErrInvalidTotpCode, "two-factor disable code mismatch")
		}

		return twoFactorRepo.Delete(ctx, userID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to disable two-factor")
	}

	srv.log(ctx).Info("Two-factor disabled", slog.String("user_id", userID.String()))

	return nil
}

// IsEnabled reports whether the user has a confirmed second factor.
func (srv *twoFactorService) IsEnabled(ctx context.Context, userID uuid.UUID) (bool, error) {
	var enabled bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		secret, err := repoFactory.TwoFactorRepo().FindByUserID(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrTwoFactorNotFound) {
			return errors.Wrap(err, "failed to load two-factor state")
		}
		enabled = secret.State() == entity.TwoFactorStateEnabled

		return nil
	})
	if err != nil {
		return false, err
	}

	return enabled, nil
}
