package postgres

import (
	"context"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const socialAccountProviderConstraint = "user_social_accounts_provider_provider_id_key"

// socialAccountRepository implements repository.SocialAccountRepository using GORM.
type socialAccountRepository struct {
	db *gorm.DB
}

// NewSocialAccountRepository is the constructor for socialAccountRepository.
func NewSocialAccountRepository(db *gorm.DB) repository.SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

// FindByProvider retrieves the link for a provider identity.
func (repo *socialAccountRepository) FindByProvider(ctx context.Context, provider entity.ProviderType, providerID string) (*entity.SocialAccount, error) {
	var accountM model.SocialAccountModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_id = ?", provider.String(), providerID).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocialAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find social account")
	}

	return toSocialAccountDomain(&accountM), nil
}

// Create persists a new link between a provider identity and a user.
func (repo *socialAccountRepository) Create(ctx context.Context, account *entity.SocialAccount) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate social account id")
		}
		account.ID = id
	}

	accountM := fromSocialAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isConstraintViolationOn(err, socialAccountProviderConstraint) {
			return repository.ErrSocialAccountConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create social account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// ListByUserID returns every link owned by a user, oldest first.
func (repo *socialAccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SocialAccount, error) {
	var accountMs []model.SocialAccountModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list social accounts")
	}

	accounts := make([]*entity.SocialAccount, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toSocialAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

func toSocialAccountDomain(data *model.SocialAccountModel) *entity.SocialAccount {
	if data == nil {
		return nil
	}

	account := &entity.SocialAccount{
		ID:         data.ID,
		UserID:     data.UserID,
		Provider:   entity.ProviderType(data.Provider),
		ProviderID: data.ProviderID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Email != nil {
		account.Email = *data.Email
	}

	return account
}

func fromSocialAccountDomain(data *entity.SocialAccount) *model.SocialAccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.SocialAccountModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Provider:   data.Provider.String(),
		ProviderID: data.ProviderID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Email != "" {
		email := data.Email
		accountM.Email = &email
	}

	return accountM
}
