package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrSocialAccountNotFound is returned when no link exists for a provider identity.
	ErrSocialAccountNotFound = errors.New("social account not found")
	// ErrSocialAccountConflict is returned when (provider, provider_id) is already linked.
	ErrSocialAccountConflict = errors.New("social account already linked")
)

// SocialAccountRepository persists links between external identities and users.
type SocialAccountRepository interface {
	// FindByProvider retrieves the link for a provider identity.
	FindByProvider(ctx context.Context, provider entity.ProviderType, providerID string) (*entity.SocialAccount, error)

	// Create persists a new link. A taken (provider, provider_id) yields ErrSocialAccountConflict.
	Create(ctx context.Context, account *entity.SocialAccount) error

	// ListByUserID returns every link owned by a user.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SocialAccount, error)
}
