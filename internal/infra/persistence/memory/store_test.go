package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, store *Store, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "digest"}
	err := store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(context.Background(), user)
	})
	require.NoError(t, err)

	return user
}

func TestStore_UserUniqueEmail(t *testing.T) {
	store := NewStore()
	user := createUser(t, store, "Alice@Example.com")
	assert.Equal(t, "alice@example.com", user.Email)

	err := store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(context.Background(), &entity.User{Email: "ALICE@example.com "})
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestStore_RollbackDiscardsWrites(t *testing.T) {
	store := NewStore()
	boom := errors.New("boom")

	err := store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(context.Background(), &entity.User{Email: "ghost@example.com"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		_, err := f.UserRepo().FindByEmail(context.Background(), "ghost@example.com")
		return err
	})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestStore_CancelledContextRollsBack(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		err := f.UserRepo().Create(ctx, &entity.User{Email: "late@example.com"})
		cancel()
		return err
	})
	assert.ErrorIs(t, err, context.Canceled)

	err = store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		_, err := f.UserRepo().FindByEmail(context.Background(), "late@example.com")
		return err
	})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestStore_ResetTokenLifecycle(t *testing.T) {
	store := NewStore()
	user := createUser(t, store, "reset@example.com")
	now := time.Now().UTC()

	first := &entity.PasswordResetToken{UserID: user.ID, TokenHash: "h1", ExpiresAt: now.Add(time.Hour)}
	second := &entity.PasswordResetToken{UserID: user.ID, TokenHash: "h2", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.PasswordResetRepo().Create(context.Background(), first); err != nil {
			return err
		}
		return f.PasswordResetRepo().Create(context.Background(), second)
	}))

	require.NoError(t, store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		repo := f.PasswordResetRepo()
		token, err := repo.FindUsableByHashForUpdate(context.Background(), "h1", now)
		if err != nil {
			return err
		}
		if err := repo.MarkUsed(context.Background(), token.ID, now); err != nil {
			return err
		}
		n, err := repo.InvalidateOutstanding(context.Background(), user.ID, now)
		assert.Equal(t, int64(1), n)
		return err
	}))

	err := store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		_, err := f.PasswordResetRepo().FindUsableByHashForUpdate(context.Background(), "h2", now)
		return err
	})
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)
}

func TestStore_ExpiredTokenIsNotUsable(t *testing.T) {
	store := NewStore()
	user := createUser(t, store, "expired@example.com")
	now := time.Now().UTC()

	require.NoError(t, store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.PasswordResetRepo().Create(context.Background(), &entity.PasswordResetToken{
			UserID: user.ID, TokenHash: "old", ExpiresAt: now.Add(-time.Second),
		})
	}))

	err := store.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		_, err := f.PasswordResetRepo().FindUsableByHashForUpdate(context.Background(), "old", now)
		return err
	})
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)
}

func TestStore_TwoFactorStates(t *testing.T) {
	store := NewStore()
	user := createUser(t, store, "totp@example.com")
	ctx := context.Background()

	require.NoError(t, store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.TwoFactorRepo().Upsert(ctx, &entity.TwoFactorSecret{UserID: user.ID, SecretEncrypted: []byte("one")})
	}))
	require.NoError(t, store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.TwoFactorRepo().Upsert(ctx, &entity.TwoFactorSecret{UserID: user.ID, SecretEncrypted: []byte("two")})
	}))

	require.NoError(t, store.Execute(ctx, func(f repository.RepositoryFactory) error {
		secret, err := f.TwoFactorRepo().FindByUserIDForUpdate(ctx, user.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, entity.TwoFactorStatePending, secret.State())
		assert.Equal(t, []byte("two"), secret.SecretEncrypted)
		return f.TwoFactorRepo().Enable(ctx, user.ID, time.Now())
	}))

	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.TwoFactorRepo().Enable(ctx, user.ID, time.Now())
	})
	assert.ErrorIs(t, err, repository.ErrTwoFactorNotFound)

	require.NoError(t, store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.TwoFactorRepo().Delete(ctx, user.ID)
	}))
	err = store.Execute(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.TwoFactorRepo().FindByUserID(ctx, user.ID)
		return err
	})
	assert.ErrorIs(t, err, repository.ErrTwoFactorNotFound)
}

func TestStore_SocialAccountUniqueness(t *testing.T) {
	store := NewStore()
	user := createUser(t, store, "social@example.com")
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
				return f.SocialAccountRepo().Create(ctx, &entity.SocialAccount{
					UserID: user.ID, Provider: entity.ProviderTypeGoogle, ProviderID: "sub-1",
				})
			})
			if errors.Is(err, repository.ErrSocialAccountConflict) {
				mu.Lock()
				conflicts++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers-1, conflicts)
	require.NoError(t, store.Execute(ctx, func(f repository.RepositoryFactory) error {
		accounts, err := f.SocialAccountRepo().ListByUserID(ctx, user.ID)
		assert.Len(t, accounts, 1)
		return err
	}))
}
