package handler

import (
	"log/slog"

	"gatekeeper/internal/delivery/api/response"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChallengeHandlerParams holds dependencies for ChallengeHandler, injected by Fx.
type ChallengeHandlerParams struct {
	fx.In

	ChallengeUC usecase.ChallengeUsecase
	Logger      *slog.Logger
}

// ChallengeHandler resolves the login, consent and logout steps of an authorization flow.
type ChallengeHandler struct {
	challengeUC usecase.ChallengeUsecase
	logger      *slog.Logger
}

// NewChallengeHandler is the constructor for ChallengeHandler
func NewChallengeHandler(params ChallengeHandlerParams) *ChallengeHandler {
	return &ChallengeHandler{
		challengeUC: params.ChallengeUC,
		logger:      params.Logger,
	}
}

// LoginRequest represents the request body for resolving a login challenge.
// Credentials may be omitted when the authorization server already knows the session.
type LoginRequest struct {
	LoginChallenge string `json:"login_challenge" validate:"required"`
	Email          string `json:"email" validate:"omitempty,max=254"`
	Password       string `json:"password" validate:"omitempty,max=1024"`
	TOTPCode       string `json:"totp_code"`
	Remember       bool   `json:"remember"`
}

// ConsentRequest represents the request body for resolving a consent challenge.
type ConsentRequest struct {
	ConsentChallenge string   `json:"consent_challenge" validate:"required"`
	Accept           *bool    `json:"accept" validate:"required"`
	GrantScope       []string `json:"grant_scope"`
	Remember         bool     `json:"remember"`
}

// LogoutRequest represents the request body for resolving a logout challenge.
type LogoutRequest struct {
	LogoutChallenge string `json:"logout_challenge" validate:"required"`
}

// Login handles POST /login
func (h *ChallengeHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	redirectTo, err := h.challengeUC.ResolveLogin(c.Request().Context(), usecase.LoginInput{
		Challenge: req.LoginChallenge,
		Email:     req.Email,
		Password:  req.Password,
		TOTPCode:  req.TOTPCode,
		Remember:  req.Remember,
		ClientIP:  c.RealIP(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Redirect(c, redirectTo)
}

// Consent handles POST /consent
func (h *ChallengeHandler) Consent(c echo.Context) error {
	var req ConsentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid consent input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	redirectTo, err := h.challengeUC.ResolveConsent(c.Request().Context(), usecase.ConsentInput{
		Challenge:  req.ConsentChallenge,
		Accept:     *req.Accept,
		GrantScope: req.GrantScope,
		Remember:   req.Remember,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Redirect(c, redirectTo)
}

// Logout handles POST /logout
func (h *ChallengeHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid logout input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	redirectTo, err := h.challengeUC.ResolveLogout(c.Request().Context(), req.LogoutChallenge)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Redirect(c, redirectTo)
}
