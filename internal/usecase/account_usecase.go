package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterInput defines the data required to register a new local account.
type RegisterInput struct {
	Email    string
	Password string
}

// RegisterOutput returns the newly created user's id.
type RegisterOutput struct {
	UserID uuid.UUID
}

// AccountUsecase defines account management operations.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}
