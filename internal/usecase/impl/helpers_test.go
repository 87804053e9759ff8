package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/persistence/memory"
	"gatekeeper/internal/infra/qrcode"
	"gatekeeper/internal/infra/totp"
	"gatekeeper/internal/infra/vault"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "Correct-Horse-9"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Hydra: &config.HydraConfig{
			Remember:           false,
			RememberFor:        3600,
			ConsentRememberFor: 7200,
		},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 8, MaxLength: 128},
		TwoFactor:        &config.TwoFactorConfig{Issuer: "Gatekeeper", SetupTTL: 10 * time.Minute, Skew: 1},
		QRCode:           &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"},
		PasswordReset: &config.PasswordResetConfig{
			URLBase:        "https://id.example.com/reset",
			TokenTTL:       time.Hour,
			RevokeSessions: true,
		},
		OAuth: &config.OAuthConfig{StateTTL: 10 * time.Minute},
		Redis: &config.RedisConfig{
			LoginLimit:  5,
			LoginWindow: 15 * time.Minute,
			ResetLimit:  3,
			ResetWindow: time.Hour,
		},
		AMQP: &config.AMQPConfig{},
	}
}

// testKit bundles the real collaborators that are cheap enough to use in unit tests.
type testKit struct {
	store  *memory.Store
	hasher service.PasswordHasher
	policy service.PasswordPolicy
	vault  service.SecretVault
	totp   service.TOTPGenerator
	qrCode service.QRCodeService
	cfg    *config.Config
	logger *slog.Logger
}

func newTestKit(t *testing.T) *testKit {
	t.Helper()

	hasher, err := auth.NewArgon2HasherWithParams(auth.Argon2Params{
		Memory:      64,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	require.NoError(t, err)

	secretVault, err := vault.NewAESGCM([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	cfg := newTestConfig()

	return &testKit{
		store:  memory.NewStore(),
		hasher: hasher,
		policy: auth.NewPasswordPolicy(cfg),
		vault:  secretVault,
		totp:   totp.NewGenerator(cfg.TwoFactor.Issuer, cfg.TwoFactor.Skew),
		qrCode: qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel),
		cfg:    cfg,
		logger: newDiscardLogger(),
	}
}

func (k *testKit) txManager() repository.TransactionManager {
	return memory.NewTransactionManager(k.store)
}

// createUser stores an account; an empty password makes it social-only.
func (k *testKit) createUser(t *testing.T, email, password string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email}
	if password != "" {
		hash, err := k.hasher.Hash(password)
		require.NoError(t, err)
		user.PasswordHash = hash
	}

	require.NoError(t, k.store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(context.Background(), user)
	}))

	return user
}

// enableTwoFactor stores an enabled second factor and returns its plain secret.
func (k *testKit) enableTwoFactor(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	secret, err := k.totp.GenerateSecret()
	require.NoError(t, err)
	sealed, err := k.vault.Encrypt([]byte(secret))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, k.store.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.TwoFactorRepo().Upsert(ctx, &entity.TwoFactorSecret{UserID: userID, SecretEncrypted: sealed}); err != nil {
			return err
		}
		return f.TwoFactorRepo().Enable(ctx, userID, time.Now())
	}))

	return secret
}

func (k *testKit) twoFactorState(t *testing.T, userID uuid.UUID) entity.TwoFactorState {
	t.Helper()

	var secret *entity.TwoFactorSecret
	_ = k.store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		secret, _ = f.TwoFactorRepo().FindByUserID(context.Background(), userID)
		return nil
	})

	return secret.State()
}

func currentCode(t *testing.T, secret string, at time.Time) string {
	t.Helper()

	code, err := totp.Code(secret, at)
	require.NoError(t, err)

	return code
}

// wrongCode returns a well-formed code that no step around at matches.
func wrongCode(t *testing.T, secret string, at time.Time) string {
	t.Helper()

	taken := map[string]bool{}
	for step := -2; step <= 2; step++ {
		taken[currentCode(t, secret, at.Add(time.Duration(step)*30*time.Second))] = true
	}
	for _, candidate := range []string{"000000", "111111", "222222", "333333", "444444", "555555"} {
		if !taken[candidate] {
			return candidate
		}
	}
	t.Fatal("no unused code")

	return ""
}

func assertAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, want, "got %v", err)
}
