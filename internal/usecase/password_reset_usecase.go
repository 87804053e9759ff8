package usecase

import "context"

// PasswordResetUsecase issues and consumes password reset tokens.
type PasswordResetUsecase interface {
	// Request starts a reset for email. The outcome is the same whether or not
	// the address belongs to an account.
	Request(ctx context.Context, email string) error
	// Confirm consumes a reset token and sets the new password.
	Confirm(ctx context.Context, token, newPassword string) error
}
