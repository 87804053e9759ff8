package postgres

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// passwordResetRepository implements repository.PasswordResetRepository.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create stores a freshly issued token. Only the hash is ever written.
func (repo *passwordResetRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	if token.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate reset token id")
		}
		token.ID = id
	}

	tokenM := fromPasswordResetTokenDomain(token)
	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset token")
	}
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindUsableByHashForUpdate locks the matching usable token until the transaction ends.
// A concurrent confirmation of the same token blocks here and then sees used_at set.
func (repo *passwordResetRepository) FindUsableByHashForUpdate(ctx context.Context, tokenHash string, now time.Time) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", tokenHash, now).
		Take(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token")
	}

	return toPasswordResetTokenDomain(&tokenM), nil
}

// MarkUsed sets used_at on a token that is still unused.
func (repo *passwordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reset token used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

// InvalidateOutstanding burns every unused token of the user.
func (repo *passwordResetRepository) InvalidateOutstanding(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("user_id = ? AND used_at IS NULL", userID).
		Update("used_at", at)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to invalidate reset tokens")
	}

	return result.RowsAffected, nil
}

// twoFactorRepository implements repository.TwoFactorRepository.
type twoFactorRepository struct {
	db *gorm.DB
}

// NewTwoFactorRepository is the constructor for twoFactorRepository.
func NewTwoFactorRepository(db *gorm.DB) repository.TwoFactorRepository {
	return &twoFactorRepository{db: db}
}

// FindByUserID returns the user's two-factor record.
func (repo *twoFactorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TwoFactorSecret, error) {
	return repo.find(repo.db.WithContext(ctx), userID)
}

// FindByUserIDForUpdate returns the record and holds a row lock on it.
func (repo *twoFactorRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.TwoFactorSecret, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), userID)
}

func (repo *twoFactorRepository) find(db *gorm.DB, userID uuid.UUID) (*entity.TwoFactorSecret, error) {
	var secretM model.TwoFactorSecretModel
	if err := db.Where("user_id = ?", userID).Take(&secretM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTwoFactorNotFound
		}

		return nil, errors.Wrap(err, "failed to find two-factor secret")
	}

	return toTwoFactorSecretDomain(&secretM), nil
}

// Upsert creates the record or overwrites the secret and enabled flag of an existing one.
func (repo *twoFactorRepository) Upsert(ctx context.Context, secret *entity.TwoFactorSecret) error {
	now := time.Now().UTC()
	secretM := fromTwoFactorSecretDomain(secret)
	secretM.CreatedAt = now
	secretM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"secret_encrypted", "enabled", "updated_at"}),
		}).
		Create(secretM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store two-factor secret")
	}
	secret.UpdatedAt = now

	return nil
}

// Enable flips a pending record to enabled.
func (repo *twoFactorRepository) Enable(ctx context.Context, userID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TwoFactorSecretModel{}).
		Where("user_id = ? AND enabled = ?", userID, false).
		Updates(map[string]any{
			"enabled":    true,
			"updated_at": at,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to enable two-factor secret")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTwoFactorNotFound
	}

	return nil
}

// Delete removes the record.
func (repo *twoFactorRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.TwoFactorSecretModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete two-factor secret")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTwoFactorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPasswordResetTokenDomain(data *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromPasswordResetTokenDomain(data *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
	}
}

func toTwoFactorSecretDomain(data *model.TwoFactorSecretModel) *entity.TwoFactorSecret {
	if data == nil {
		return nil
	}

	return &entity.TwoFactorSecret{
		UserID:          data.UserID,
		SecretEncrypted: data.SecretEncrypted,
		Enabled:         data.Enabled,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromTwoFactorSecretDomain(data *entity.TwoFactorSecret) *model.TwoFactorSecretModel {
	if data == nil {
		return nil
	}

	return &model.TwoFactorSecretModel{
		UserID:          data.UserID,
		SecretEncrypted: data.SecretEncrypted,
		Enabled:         data.Enabled,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
