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

	"go.uber.org/fx"
)

const (
	maxSocialLinkAttempts     = 3
	rejectProviderDescription = "The identity provider denied the request"
)

// SocialServiceParams holds dependencies for SocialService, injected by Fx.
type SocialServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	AuthServer service.AuthorizationServer
	Providers  service.SocialProviderRegistry
	Signer     service.StateSigner
	Config     *config.Config
	Logger     *slog.Logger
}

// socialService implements both SocialLinkUsecase and SocialLoginUsecase.
type socialService struct {
	txManager  repository.TransactionManager
	authServer service.AuthorizationServer
	providers  service.SocialProviderRegistry
	signer     service.StateSigner
	hydra      *config.HydraConfig
	stateTTL   time.Duration
	logger     *slog.Logger
}

func newSocialService(params SocialServiceParams) *socialService {
	srv := &socialService{
		txManager:  params.TxManager,
		authServer: params.AuthServer,
		providers:  params.Providers,
		signer:     params.Signer,
		hydra:      params.Config.Hydra,
		logger:     params.Logger,
	}
	if params.Config.OAuth != nil {
		srv.stateTTL = params.Config.OAuth.StateTTL
	}

	return srv
}

// NewSocialLinkService is the constructor for the social link resolver.
func NewSocialLinkService(params SocialServiceParams) usecase.SocialLinkUsecase {
	return newSocialService(params)
}

// NewSocialLoginService is the constructor for the social login flow.
func NewSocialLoginService(params SocialServiceParams) usecase.SocialLoginUsecase {
	return newSocialService(params)
}

func (srv *socialService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// LinkOrCreate resolves an external identity to a local user, linking or creating as needed.
func (srv *socialService) LinkOrCreate(ctx context.Context, identity entity.SocialIdentity) (*usecase.SocialLinkResult, error) {
	return srv.linkWithRetry(ctx, identity)
}

// linkWithRetry runs the resolution in a fresh transaction per attempt. When a
// concurrent request wins the race on the unique constraints, the next attempt
// finds its rows by lookup.
func (srv *socialService) linkWithRetry(ctx context.Context, identity entity.SocialIdentity) (*usecase.SocialLinkResult, error) {
	if !identity.Provider.IsValid() || strings.TrimSpace(identity.ProviderID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provider and provider id are required")
	}

	for attempt := 1; ; attempt++ {
		var result *usecase.SocialLinkResult
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			resolved, err := resolveSocialIdentity(ctx, repoFactory, identity)
			if err != nil {
				return err
			}
			result = resolved

			return nil
		})
		if err == nil {
			if result.Created || result.Linked {
				srv.log(ctx).Info("Social identity linked",
					slog.String("provider", identity.Provider.String()),
					slog.String("user_id", result.UserID.String()),
					slog.Bool("created", result.Created),
				)
			}

			return result, nil
		}

		conflict := errors.IsAny(err, repository.ErrSocialAccountConflict, domainerrors.ErrDuplicateEmail)
		if !conflict || attempt >= maxSocialLinkAttempts {
			return nil, errors.Wrap(err, "failed to link social identity")
		}

		srv.log(ctx).Debug("Social link raced with a concurrent request, retrying",
			slog.String("provider", identity.Provider.String()),
			slog.Int("attempt", attempt),
		)
	}
}

func resolveSocialIdentity(ctx context.Context, repoFactory repository.RepositoryFactory, identity entity.SocialIdentity) (*usecase.SocialLinkResult, error) {
	socialRepo := repoFactory.SocialAccountRepo()
	userRepo := repoFactory.UserRepo()

	account, err := socialRepo.FindByProvider(ctx, identity.Provider, identity.ProviderID)
	if err == nil {
		return &usecase.SocialLinkResult{UserID: account.UserID}, nil
	}
	if !errors.Is(err, repository.ErrSocialAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find social account")
	}

	email := entity.NormalizeEmail(identity.Email)

	var user *entity.User
	if email != "" {
		user, err = userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user")
		}
	}

	result := &usecase.SocialLinkResult{Linked: true}
	if user == nil {
		if email == "" {
			return nil, errors.Wrap(domainerrors.ErrOAuthEmailRequired, "cannot create account without email")
		}

		user = &entity.User{Email: email}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		result.Created = true
	}

	err = socialRepo.Create(ctx, &entity.SocialAccount{
		UserID:     user.ID,
		Provider:   identity.Provider,
		ProviderID: identity.ProviderID,
		Email:      email,
	})
	if err != nil {
		return nil, err
	}

	result.UserID = user.ID

	return result, nil
}

// AuthURL signs the login challenge into the OAuth state and returns the provider's consent URL.
func (srv *socialService) AuthURL(ctx context.Context, provider entity.ProviderType, loginChallenge string) (string, error) {
	if strings.TrimSpace(loginChallenge) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("login_challenge is required")
	}

	socialProvider, err := srv.providers.Get(provider)
	if err != nil {
		return "", err
	}

	state, err := srv.signer.Sign(service.SocialState{
		LoginChallenge: loginChallenge,
		Provider:       provider,
	}, srv.stateTTL)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign oauth state")
	}

	return socialProvider.AuthCodeURL(state), nil
}

// Callback finishes the provider round trip and resolves the login challenge it carries.
func (srv *socialService) Callback(ctx context.Context, input usecase.SocialCallbackInput) (string, error) {
	state, err := srv.signer.Verify(input.State)
	if err != nil {
		return "", err
	}
	if state.Provider != input.Provider {
		return "", domainerrors.ErrOAuthStateInvalid.WithDetails("state was issued for another provider")
	}

	if input.Error != "" {
		srv.log(ctx).Info("Identity provider denied login",
			slog.String("provider", input.Provider.String()),
			slog.String("provider_error", input.Error),
		)

		redirect, err := srv.authServer.RejectLoginRequest(ctx, state.LoginChallenge, service.Rejection{
			Error:       rejectAccessDenied,
			Description: rejectProviderDescription,
		})
		if err != nil {
			return "", errors.Wrap(err, "failed to reject login request")
		}

		return redirect, nil
	}

	socialProvider, err := srv.providers.Get(input.Provider)
	if err != nil {
		return "", err
	}

	// Fail on a dead challenge before spending the authorization code.
	if _, err := srv.authServer.GetLoginRequest(ctx, state.LoginChallenge); err != nil {
		return "", errors.Wrap(err, "failed to fetch login request")
	}

	identity, err := socialProvider.Identify(ctx, input.Code)
	if err != nil {
		return "", errors.Wrap(err, "failed to identify social user")
	}
	identity.Provider = socialProvider.Provider()

	// The link commits before Hydra is told the subject. A failed accept leaves
	// a valid link that the next login resolves by lookup.
	result, err := srv.linkWithRetry(ctx, *identity)
	if err != nil {
		return "", err
	}

	redirect, err := srv.authServer.AcceptLoginRequest(ctx, state.LoginChallenge, service.AcceptLogin{
		Subject:     result.UserID.String(),
		Remember:    srv.hydra.Remember,
		RememberFor: srv.hydra.RememberFor,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to accept login request")
	}

	return redirect, nil
}
