package mailer

import (
	"context"

	"github.com/MKhiriev/go-user-auth/internal/logger"
)

// logMailer writes messages to the log instead of delivering them.
// Used for local runs without a mail relay.
type logMailer struct {
	logger *logger.Logger
}

func NewLogMailer(log *logger.Logger) Sender {
	return &logMailer{logger: log.WithComponent("log-mailer")}
}

func (m *logMailer) Send(ctx context.Context, to, subject, html string) error {
	if to == "" {
		return ErrEmptyAddress
	}

	m.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("html", html).
		Msg("email not delivered: log-only mailer")

	return nil
}
