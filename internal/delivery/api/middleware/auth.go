package middleware

import (
	"log/slog"
	"strings"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const contextKeyUserID = "userID"

// AuthMiddleware authenticates access tokens issued by the authorization server.
type AuthMiddleware struct {
	authServer service.AuthorizationServer
	logger     *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthServer service.AuthorizationServer
	Logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authServer: params.AuthServer, logger: params.Logger}
}

// Authenticate introspects the bearer token and stores its subject as the user id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		result, err := m.authServer.IntrospectToken(c.Request().Context(), token)
		if err != nil {
			return errors.Wrap(err, "failed to introspect access token")
		}
		if !result.Active {
			return domainerrors.ErrUnauthorized
		}

		userID, err := uuid.Parse(result.Subject)
		if err != nil {
			m.logger.WarnContext(c.Request().Context(), "Access token subject is not a user id",
				slog.String("client_id", result.ClientID),
			)

			return domainerrors.ErrUnauthorized
		}

		c.Set(contextKeyUserID, userID)

		return next(c)
	}
}

// GetUserID returns the user authenticated by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}
