// Package notifier provides abstraction for sending transactional email
// (welcome messages, reporter approval notices). Implementations handle
// rate limiting and failure isolation internally; delivery is always
// best-effort from the caller's point of view.
package notifier

import "context"

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Notifier sends transactional email.
type Notifier interface {
	// Send delivers one email. Implementations must respect context
	// cancellation and apply their own rate limiting.
	Send(ctx context.Context, email Email) error
}
