package main

import (
	"context"
	"log/slog"
	"os"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	"gatekeeper/internal/delivery/api"
	apimiddleware "gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/router/handler"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/auth/social"
	"gatekeeper/internal/infra/hydra"
	logs "gatekeeper/internal/infra/log"
	"gatekeeper/internal/infra/notification"
	"gatekeeper/internal/infra/persistence/memory"
	"gatekeeper/internal/infra/persistence/postgres"
	"gatekeeper/internal/infra/qrcode"
	"gatekeeper/internal/infra/ratelimit"
	"gatekeeper/internal/infra/totp"
	"gatekeeper/internal/infra/vault"
	"gatekeeper/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type storageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		ratelimit.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newTransactionManager,
		),
	)
}

// newTransactionManager selects the storage driver named in the config.
func newTransactionManager(params storageParams) (repository.TransactionManager, error) {
	if params.Config.Storage.Driver == config.StorageDriverMemory {
		params.Logger.Warn("Using in-memory storage, data is lost on restart")

		return memory.NewTransactionManager(memory.NewStore()), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lc,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewTransactionManager(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewArgon2Hasher,
			auth.NewPasswordPolicy,
			auth.NewJWTStateSigner,
			fx.Annotate(
				social.NewRegistry,
				fx.As(new(service.SocialProviderRegistry)),
			),
			vault.New,
			totp.New,
			qrcode.New,
			hydra.New,
			ratelimit.New,
			notification.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewChallengeService,
			impl.NewAccountService,
			impl.NewPasswordResetService,
			impl.NewTwoFactorService,
			impl.NewSocialLinkService,
			impl.NewSocialLoginService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewChallengeHandler,
			handler.NewAccountHandler,
			handler.NewPasswordResetHandler,
			handler.NewTwoFactorHandler,
			handler.NewSocialHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
