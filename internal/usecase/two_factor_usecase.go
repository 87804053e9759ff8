package usecase

import (
	"context"

	"github.com/google/uuid"
)

// TwoFactorSetupOutput is what a user needs to register the secret in an authenticator app.
type TwoFactorSetupOutput struct {
	Secret     string
	OTPAuthURI string
	QRCode     string // data:image/png;base64,...
}

// TwoFactorUsecase manages TOTP enrolment.
type TwoFactorUsecase interface {
	Setup(ctx context.Context, userID uuid.UUID, password string) (*TwoFactorSetupOutput, error)
	Verify(ctx context.Context, userID uuid.UUID, code string) error
	Disable(ctx context.Context, userID uuid.UUID, password, code string) error
	IsEnabled(ctx context.Context, userID uuid.UUID) (bool, error)
}
