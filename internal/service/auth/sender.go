package auth

import (
	"context"
	"log/slog"
)

// LogSender writes confirmation links to the log instead of mailing them.
// It is the only sender shipped; a mail relay can satisfy the same method.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("component", "confirmation_sender")}
}

// SendConfirmation logs the link at info level.
func (s *LogSender) SendConfirmation(ctx context.Context, email, link string) error {
	s.log.InfoContext(ctx, "confirmation link issued",
		slog.String("email", email),
		slog.String("link", link))
	return nil
}
