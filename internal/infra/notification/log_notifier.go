// Package notification hands password reset notices to their delivery channel.
package notification

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/util"
)

// logNotifier writes reset notices to the log. The link itself is only
// written when revealLink is set, which is meant for local development.
type logNotifier struct {
	logger     *slog.Logger
	revealLink bool
	now        func() time.Time
}

// NewLogNotifier is the constructor for logNotifier.
func NewLogNotifier(logger *slog.Logger, revealLink bool) service.ResetNotifier {
	return &logNotifier{logger: logger, revealLink: revealLink, now: time.Now}
}

func (n *logNotifier) NotifyPasswordReset(ctx context.Context, notice service.PasswordResetNotice) error {
	attrs := []any{
		slog.String("user_id", notice.UserID.String()),
		slog.String("email", util.MaskEmail(notice.Email)),
		slog.String("expires_in", util.FormatDuration(notice.ExpiresAt.Sub(n.now()))),
	}
	if n.revealLink {
		attrs = append(attrs, slog.String("reset_url", notice.ResetURL))
	}

	n.logger.InfoContext(ctx, "Password reset link issued", attrs...)

	return nil
}
