package notification

import (
	"context"
	"log/slog"

	"medrep/internal/domain/service"

	"github.com/google/uuid"
)

// logMailer writes emails to the log instead of sending them. Used in development.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that only logs.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, mail service.Mail) (*service.MailResult, error) {
	messageID := "log-" + uuid.NewString()

	m.logger.InfoContext(ctx, "Email not delivered (log mailer)",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
		slog.String("message_id", messageID),
	)
	m.logger.DebugContext(ctx, "Email body", slog.String("html", mail.HTMLBody))

	return &service.MailResult{Success: true, MessageID: messageID}, nil
}
