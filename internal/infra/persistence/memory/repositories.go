package memory

import (
	"context"
	"sort"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
)

var errDuplicateTokenHash = errors.New("duplicate password reset token hash")

type userRepository struct {
	state *state
	now   func() time.Time
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.state.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	id, ok := r.state.emails[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	user.Email = entity.NormalizeEmail(user.Email)
	if _, taken := r.state.emails[user.Email]; taken {
		return domainerrors.ErrDuplicateEmail
	}
	if user.ID == uuid.Nil {
		id, err := newID()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}
	if _, taken := r.state.users[user.ID]; taken {
		return domainerrors.ErrUserCreationFailed.WrapMessage("user id already exists")
	}

	now := r.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.state.users[user.ID] = *user
	r.state.emails[user.Email] = user.ID

	return nil
}

func (r *userRepository) UpdatePasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	user, ok := r.state.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = r.now()
	r.state.users[id] = user

	return nil
}

type socialAccountRepository struct {
	state *state
	now   func() time.Time
}

func (r *socialAccountRepository) FindByProvider(_ context.Context, provider entity.ProviderType, providerID string) (*entity.SocialAccount, error) {
	id, ok := r.state.socialKeys[socialKey{provider: provider, providerID: providerID}]
	if !ok {
		return nil, repository.ErrSocialAccountNotFound
	}
	account := r.state.socials[id]

	return &account, nil
}

func (r *socialAccountRepository) Create(_ context.Context, account *entity.SocialAccount) error {
	key := socialKey{provider: account.Provider, providerID: account.ProviderID}
	if _, taken := r.state.socialKeys[key]; taken {
		return repository.ErrSocialAccountConflict
	}
	if _, ok := r.state.users[account.UserID]; !ok {
		return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
	}
	if account.ID == uuid.Nil {
		id, err := newID()
		if err != nil {
			return errors.Wrap(err, "failed to generate social account id")
		}
		account.ID = id
	}

	now := r.now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.state.socials[account.ID] = *account
	r.state.socialKeys[key] = account.ID

	return nil
}

func (r *socialAccountRepository) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.SocialAccount, error) {
	accounts := make([]*entity.SocialAccount, 0)
	for _, account := range r.state.socials {
		if account.UserID == userID {
			accounts = append(accounts, &account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})

	return accounts, nil
}

type passwordResetRepository struct {
	state *state
	now   func() time.Time
}

func (r *passwordResetRepository) Create(_ context.Context, token *entity.PasswordResetToken) error {
	if _, ok := r.state.users[token.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	if _, taken := r.state.resetHashes[token.TokenHash]; taken {
		return domainerrors.NewDatabaseExecuteError(errDuplicateTokenHash, "failed to create password reset token")
	}
	if token.ID == uuid.Nil {
		id, err := newID()
		if err != nil {
			return errors.Wrap(err, "failed to generate reset token id")
		}
		token.ID = id
	}

	token.CreatedAt = r.now()
	r.state.resets[token.ID] = copyResetToken(*token)
	r.state.resetHashes[token.TokenHash] = token.ID

	return nil
}

// FindUsableByHashForUpdate needs no lock: the store already runs one unit at a time.
func (r *passwordResetRepository) FindUsableByHashForUpdate(_ context.Context, tokenHash string, now time.Time) (*entity.PasswordResetToken, error) {
	id, ok := r.state.resetHashes[tokenHash]
	if !ok {
		return nil, repository.ErrResetTokenNotFound
	}
	token := copyResetToken(r.state.resets[id])
	if !token.IsUsable(now) {
		return nil, repository.ErrResetTokenNotFound
	}

	return &token, nil
}

func (r *passwordResetRepository) MarkUsed(_ context.Context, id uuid.UUID, usedAt time.Time) error {
	token, ok := r.state.resets[id]
	if !ok || token.UsedAt != nil {
		return repository.ErrResetTokenNotFound
	}
	token.UsedAt = &usedAt
	r.state.resets[id] = token

	return nil
}

func (r *passwordResetRepository) InvalidateOutstanding(_ context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	var n int64
	for id, token := range r.state.resets {
		if token.UserID != userID || token.UsedAt != nil {
			continue
		}
		usedAt := at
		token.UsedAt = &usedAt
		r.state.resets[id] = token
		n++
	}

	return n, nil
}

type twoFactorRepository struct {
	state *state
	now   func() time.Time
}

func (r *twoFactorRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.TwoFactorSecret, error) {
	secret, ok := r.state.twoFactor[userID]
	if !ok {
		return nil, repository.ErrTwoFactorNotFound
	}
	secret = copyTwoFactor(secret)

	return &secret, nil
}

func (r *twoFactorRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.TwoFactorSecret, error) {
	return r.FindByUserID(ctx, userID)
}

func (r *twoFactorRepository) Upsert(_ context.Context, secret *entity.TwoFactorSecret) error {
	if _, ok := r.state.users[secret.UserID]; !ok {
		return repository.ErrUserNotFound
	}

	now := r.now()
	stored, exists := r.state.twoFactor[secret.UserID]
	if !exists {
		stored = entity.TwoFactorSecret{UserID: secret.UserID, CreatedAt: now}
	}
	stored.SecretEncrypted = append([]byte(nil), secret.SecretEncrypted...)
	stored.Enabled = secret.Enabled
	stored.UpdatedAt = now
	r.state.twoFactor[secret.UserID] = stored

	secret.CreatedAt = stored.CreatedAt
	secret.UpdatedAt = now

	return nil
}

func (r *twoFactorRepository) Enable(_ context.Context, userID uuid.UUID, at time.Time) error {
	secret, ok := r.state.twoFactor[userID]
	if !ok || secret.Enabled {
		return repository.ErrTwoFactorNotFound
	}
	secret.Enabled = true
	secret.UpdatedAt = at
	r.state.twoFactor[userID] = secret

	return nil
}

func (r *twoFactorRepository) Delete(_ context.Context, userID uuid.UUID) error {
	if _, ok := r.state.twoFactor[userID]; !ok {
		return repository.ErrTwoFactorNotFound
	}
	delete(r.state.twoFactor, userID)

	return nil
}
