// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/config"
	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ChallengeHandler     *handler.ChallengeHandler
	AccountHandler       *handler.AccountHandler
	PasswordResetHandler *handler.PasswordResetHandler
	TwoFactorHandler     *handler.TwoFactorHandler
	SocialHandler        *handler.SocialHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	challengeHandler     *handler.ChallengeHandler
	accountHandler       *handler.AccountHandler
	passwordResetHandler *handler.PasswordResetHandler
	twoFactorHandler     *handler.TwoFactorHandler
	socialHandler        *handler.SocialHandler
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		challengeHandler:     params.ChallengeHandler,
		accountHandler:       params.AccountHandler,
		passwordResetHandler: params.PasswordResetHandler,
		twoFactorHandler:     params.TwoFactorHandler,
		socialHandler:        params.SocialHandler,
		authMiddleware:       params.AuthMiddleware,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes under the configured path prefix.
func (r *router) RegisterRoutes(e *echo.Echo) {
	root := e.Group(r.config.HTTP.PathPrefix)

	// Health check endpoint
	root.GET("/health", handler.HealthCheck)

	// Authorization server challenges
	root.POST("/login", r.challengeHandler.Login)
	root.POST("/consent", r.challengeHandler.Consent)
	root.POST("/logout", r.challengeHandler.Logout)

	root.POST("/register", r.accountHandler.Register)

	resetGroup := root.Group("/password-reset")
	{
		resetGroup.POST("/request", r.passwordResetHandler.Request)
		resetGroup.POST("/confirm", r.passwordResetHandler.Confirm)
	}

	// Two-factor routes act on the owner of the bearer token
	twoFactorGroup := root.Group("/2fa")
	twoFactorGroup.Use(r.authMiddleware.Authenticate)
	{
		twoFactorGroup.GET("/status", r.twoFactorHandler.Status)
		twoFactorGroup.POST("/setup", r.twoFactorHandler.Setup)
		twoFactorGroup.POST("/verify", r.twoFactorHandler.Verify)
		twoFactorGroup.POST("/disable", r.twoFactorHandler.Disable)
	}

	oauthGroup := root.Group("/oauth")
	{
		oauthGroup.GET("/:provider", r.socialHandler.AuthURL)
		oauthGroup.GET("/:provider/callback", r.socialHandler.Callback)
	}
}
