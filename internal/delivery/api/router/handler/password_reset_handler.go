package handler

import (
	"log/slog"

	"gatekeeper/internal/delivery/api/response"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	resetRequestedMessage = "If an account exists for this email, a password reset link has been sent"
	resetConfirmedMessage = "Password has been reset"
)

// PasswordResetHandlerParams holds dependencies for PasswordResetHandler, injected by Fx.
type PasswordResetHandlerParams struct {
	fx.In

	PasswordResetUC usecase.PasswordResetUsecase
	Logger          *slog.Logger
}

// PasswordResetHandler serves the account recovery endpoints.
type PasswordResetHandler struct {
	passwordResetUC usecase.PasswordResetUsecase
	logger          *slog.Logger
}

// NewPasswordResetHandler is the constructor for PasswordResetHandler
func NewPasswordResetHandler(params PasswordResetHandlerParams) *PasswordResetHandler {
	return &PasswordResetHandler{
		passwordResetUC: params.PasswordResetUC,
		logger:          params.Logger,
	}
}

// ResetRequest represents the request body for starting a password reset
type ResetRequest struct {
	Email string `json:"email" validate:"required,max=254"`
}

// ResetConfirmRequest represents the request body for consuming a reset token
type ResetConfirmRequest struct {
	Token       string `json:"token" validate:"required,max=512"`
	NewPassword string `json:"new_password" validate:"required,max=1024"`
}

// Request handles POST /password-reset/request. The response never reveals
// whether the email belongs to an account.
func (h *PasswordResetHandler) Request(c echo.Context) error {
	var req ResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password reset input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.passwordResetUC.Request(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, resetRequestedMessage)
}

// Confirm handles POST /password-reset/confirm
func (h *PasswordResetHandler) Confirm(c echo.Context) error {
	var req ResetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password reset input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.passwordResetUC.Confirm(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, resetConfirmedMessage)
}
