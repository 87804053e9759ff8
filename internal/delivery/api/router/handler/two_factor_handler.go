package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TwoFactorHandlerParams holds dependencies for TwoFactorHandler, injected by Fx.
type TwoFactorHandlerParams struct {
	fx.In

	TwoFactorUC usecase.TwoFactorUsecase
	Logger      *slog.Logger
}

// TwoFactorHandler manages TOTP enrolment of the authenticated user.
type TwoFactorHandler struct {
	twoFactorUC usecase.TwoFactorUsecase
	logger      *slog.Logger
}

// NewTwoFactorHandler is the constructor for TwoFactorHandler
func NewTwoFactorHandler(params TwoFactorHandlerParams) *TwoFactorHandler {
	return &TwoFactorHandler{
		twoFactorUC: params.TwoFactorUC,
		logger:      params.Logger,
	}
}

// SetupTwoFactorRequest re-authenticates the user before a secret is issued.
// Password-less accounts send an empty password and are refused.
type SetupTwoFactorRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// SetupTwoFactorResponse carries the pending secret.
type SetupTwoFactorResponse struct {
	Secret     string `json:"secret"`
	QRCode     string `json:"qr_code"`
	OTPAuthURI string `json:"otpauth_uri"`
}

// VerifyTwoFactorRequest confirms enrolment with a code from the authenticator.
type VerifyTwoFactorRequest struct {
	Code string `json:"code" validate:"required,max=16"`
}

// DisableTwoFactorRequest needs both factors.
type DisableTwoFactorRequest struct {
	Password string `json:"password" validate:"required,max=1024"`
	Code     string `json:"code" validate:"required,max=16"`
}

// Setup handles POST /2fa/setup
func (h *TwoFactorHandler) Setup(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	var req SetupTwoFactorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid two-factor input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.twoFactorUC.Setup(c.Request().Context(), userID, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SetupTwoFactorResponse{
		Secret:     out.Secret,
		QRCode:     out.QRCode,
		OTPAuthURI: out.OTPAuthURI,
	})
}

// Verify handles POST /2fa/verify
func (h *TwoFactorHandler) Verify(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	var req VerifyTwoFactorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid two-factor input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.twoFactorUC.Verify(c.Request().Context(), userID, req.Code); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"enabled": true})
}

// Disable handles POST /2fa/disable
func (h *TwoFactorHandler) Disable(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	var req DisableTwoFactorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid two-factor input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.twoFactorUC.Disable(c.Request().Context(), userID, req.Password, req.Code); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"disabled": true})
}

// Status handles GET /2fa/status
func (h *TwoFactorHandler) Status(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	enabled, err := h.twoFactorUC.IsEnabled(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"enabled": enabled})
}
