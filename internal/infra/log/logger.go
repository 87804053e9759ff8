package logs

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"gatekeeper/config"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	"go.uber.org/fx"
)

const sentryFlushTimeout = 2 * time.Second

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	// Parse log level from config
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	// Initialize slog logger with JSON format and specified log level
	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	// Errors are additionally shipped to Sentry when a DSN is configured
	if dsn := params.Config.Env.Log.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: params.Config.Env.Env,
			ServerName:  params.Config.Env.ServiceName,
		}); err != nil {
			return nil, errors.Wrap(err, "sentry.Init")
		}

		handler = slogmulti.Fanout(
			handler,
			slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(),
		)

		if params.Lc != nil {
			params.Lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					sentry.Flush(sentryFlushTimeout)

					return nil
				},
			})
		}
	}

	return slog.New(handler), nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
