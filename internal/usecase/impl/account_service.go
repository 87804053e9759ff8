package impl

import (
	"context"
	"log/slog"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"
	"gatekeeper/internal/util"

	"go.uber.org/fx"
)

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Policy    service.PasswordPolicy
	Logger    *slog.Logger
}

type accountService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	policy    service.PasswordPolicy
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		policy:    params.Policy,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Register creates a local account. The unique index on email decides
// duplicates, so two concurrent registrations cannot both succeed.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := srv.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	// Hashing is slow; keep it outside the transaction.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{Email: email, PasswordHash: hash}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Info("Registration failed", slog.String("email", util.MaskEmail(email)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return &usecase.RegisterOutput{UserID: user.ID}, nil
}
