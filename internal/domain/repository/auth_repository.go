// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for credential persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrResetTokenNotFound is returned when no usable reset token matches a hash.
	ErrResetTokenNotFound = errors.New("password reset token not found")
	// ErrTwoFactorNotFound is returned when a user has no two-factor record.
	ErrTwoFactorNotFound = errors.New("two-factor secret not found")
)

// PasswordResetRepository persists password reset tokens.
type PasswordResetRepository interface {
	// Create stores a freshly issued token.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindUsableByHashForUpdate returns the unused, unexpired token with the given hash
	// and locks it for the rest of the transaction.
	FindUsableByHashForUpdate(ctx context.Context, tokenHash string, now time.Time) (*entity.PasswordResetToken, error)

	// MarkUsed sets used_at on a token that is still unused.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// InvalidateOutstanding sets used_at on every unused token of the user and
	// returns how many were invalidated.
	InvalidateOutstanding(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
}

// TwoFactorRepository persists TOTP secrets.
type TwoFactorRepository interface {
	// FindByUserID returns the user's record, ErrTwoFactorNotFound when absent.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TwoFactorSecret, error)

	// FindByUserIDForUpdate is FindByUserID with a row lock held until the transaction ends.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.TwoFactorSecret, error)

	// Upsert creates the record or overwrites the secret and enabled flag of an existing one.
	Upsert(ctx context.Context, secret *entity.TwoFactorSecret) error

	// Enable flips a pending record to enabled.
	Enable(ctx context.Context, userID uuid.UUID, at time.Time) error

	// Delete removes the record, ErrTwoFactorNotFound when absent.
	Delete(ctx context.Context, userID uuid.UUID) error
}
