package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/api/response"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SocialHandlerParams holds dependencies for SocialHandler, injected by Fx.
type SocialHandlerParams struct {
	fx.In

	SocialLoginUC usecase.SocialLoginUsecase
	Logger        *slog.Logger
}

// SocialHandler starts and finishes login through external identity providers.
type SocialHandler struct {
	socialLoginUC usecase.SocialLoginUsecase
	logger        *slog.Logger
}

// NewSocialHandler is the constructor for SocialHandler
func NewSocialHandler(params SocialHandlerParams) *SocialHandler {
	return &SocialHandler{
		socialLoginUC: params.SocialLoginUC,
		logger:        params.Logger,
	}
}

// AuthURLRequest is bound from the path and query of GET /oauth/:provider.
type AuthURLRequest struct {
	Provider       string `param:"provider" validate:"required"`
	LoginChallenge string `query:"login_challenge" validate:"required"`
}

// AuthURLResponse points the browser at the provider.
type AuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// CallbackRequest is what the provider appends to the redirect URI.
type CallbackRequest struct {
	Provider string `param:"provider" validate:"required"`
	Code     string `query:"code"`
	State    string `query:"state" validate:"required"`
	Error    string `query:"error"`
}

// AuthURL handles GET /oauth/:provider
func (h *SocialHandler) AuthURL(c echo.Context) error {
	var req AuthURLRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid social login input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	authURL, err := h.socialLoginUC.AuthURL(c.Request().Context(), entity.ProviderType(req.Provider), req.LoginChallenge)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthURLResponse{AuthURL: authURL})
}

// Callback handles GET /oauth/:provider/callback and redirects to the authorization server.
func (h *SocialHandler) Callback(c echo.Context) error {
	var req CallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid social callback input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	redirectTo, err := h.socialLoginUC.Callback(c.Request().Context(), usecase.SocialCallbackInput{
		Provider: entity.ProviderType(req.Provider),
		Code:     req.Code,
		State:    req.State,
		Error:    req.Error,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, redirectTo)
}
