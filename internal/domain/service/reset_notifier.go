package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PasswordResetNotice carries what a user needs to finish a password reset.
type PasswordResetNotice struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ResetURL  string    `json:"reset_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ResetNotifier hands reset links to whatever delivers them to the user.
type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, notice PasswordResetNotice) error
}
