// Package notification delivers user-facing notifications.
package notification

import (
	"context"
	"log/slog"

	"github.com/centsible/backend/internal/application/adapter"
)

// logSink implements the adapter.NotificationSink interface by emitting a
// structured log record per notification. It is the default sink when no
// email channel is configured.
type logSink struct {
	logger *slog.Logger
}

// NewLogSink creates a new log sink instance.
func NewLogSink(logger *slog.Logger) adapter.NotificationSink {
	return &logSink{
		logger: logger,
	}
}

// Notify emits the notification as a log record.
func (s *logSink) Notify(ctx context.Context, title, body string) {
	s.logger.InfoContext(ctx, "notification delivered",
		slog.String("title", title),
		slog.String("body", body),
	)
}
