package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: ""},
		{name: "kept when well formed", incoming: "web-1f2e:42", keep: true},
		{name: "replaced when it carries spaces", incoming: "abc def"},
		{name: "replaced when too long", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			var fromCtx string
			err := m.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))
				return nil
			})(c)

			require.NoError(t, err)
			id := rec.Header().Get(echo.HeaderXRequestID)
			assert.Equal(t, id, fromCtx)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, id)
			} else {
				_, parseErr := uuid.Parse(id)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_LogsStatusWithoutQuery(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback?code=secret-code&state=s", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	err := m.Handle(func(echo.Context) error { return errors.New("upstream") })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, buf.String(), `"status":502`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.NotContains(t, buf.String(), "secret-code")
}
