// Package notification delivers user-facing notifications.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/centsible/backend/internal/application/adapter"
)

// emailSink implements the adapter.NotificationSink interface by sending the
// notification as an email via Resend. Delivery is fire-and-forget: failures
// are logged, never surfaced to the caller.
type emailSink struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	toEmail   string
	logger    *slog.Logger
}

// NewEmailSink creates a new email sink instance.
func NewEmailSink(apiKey, fromName, fromEmail, toEmail string, logger *slog.Logger) adapter.NotificationSink {
	return &emailSink{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		logger:    logger,
	}
}

// Notify sends the notification as an email.
func (s *emailSink) Notify(ctx context.Context, title, body string) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{s.toEmail},
		Subject: title,
		Text:    body,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		s.logger.WarnContext(ctx, "failed to send notification email",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.InfoContext(ctx, "notification email sent",
		slog.String("title", title),
	)
}
