package notification

import (
	"context"
	"log/slog"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the parameters required for the reset notifier
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New selects the AMQP notifier when enabled and the log notifier otherwise.
func New(params Params) service.ResetNotifier {
	if params.Config.AMQP != nil && params.Config.AMQP.Enabled {
		notifier := NewAMQPNotifier(params.Config.AMQP, params.Logger)
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return notifier.Close()
			},
		})

		return notifier
	}

	return NewLogNotifier(params.Logger, params.Config.Env.Debug)
}
