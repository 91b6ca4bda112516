package notifier

import (
	"context"
	"log/slog"
)

// Noop is a Notifier that logs and discards. It is used when email is
// disabled in configuration and as a safe default in tests.
type Noop struct{}

// Send logs the message at debug level and succeeds.
func (Noop) Send(_ context.Context, email Email) error {
	slog.Debug("email notification skipped (noop notifier)",
		slog.String("to", email.To),
		slog.String("subject", email.Subject))
	return nil
}
