package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// SMTPConfig contains configuration for the SMTP notifier.
type SMTPConfig struct {
	// Enabled indicates whether email notifications are enabled.
	Enabled bool

	// Host and Port locate the SMTP relay (e.g. smtp.gmail.com:587).
	Host string
	Port int

	// Username and Password authenticate against the relay.
	Username string
	Password string

	// From is the sender address on outgoing mail.
	From string

	// Timeout bounds one delivery attempt.
	Timeout time.Duration
}

// SMTPNotifier delivers email through an SMTP relay. Sends are rate-limited
// (mail providers throttle aggressively) and wrapped in a circuit breaker so
// a dead relay fails fast instead of holding request goroutines.
type SMTPNotifier struct {
	config      SMTPConfig
	rateLimiter *RateLimiter
	breaker     *gobreaker.CircuitBreaker

	// sendMail is swappable for tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates an SMTPNotifier with the specified configuration.
func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	settings := gobreaker.Settings{
		Name:     "smtp",
		Interval: 30 * time.Second,
		Timeout:  60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
	}

	return &SMTPNotifier{
		config:      config,
		rateLimiter: NewRateLimiter(1.0, 3), // 1 msg/s, small burst
		breaker:     gobreaker.NewCircuitBreaker(settings),
		sendMail:    smtp.SendMail,
	}
}

// Send delivers one email through the relay.
func (n *SMTPNotifier) Send(ctx context.Context, email Email) error {
	if !n.config.Enabled {
		return fmt.Errorf("smtp notifier is disabled")
	}

	if err := n.rateLimiter.Allow(ctx); err != nil {
		return fmt.Errorf("smtp rate limit wait: %w", err)
	}

	if n.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.config.Timeout)
		defer cancel()
	}

	_, err := n.breaker.Execute(func() (interface{}, error) {
		return nil, n.deliver(ctx, email)
	})
	if err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// deliver runs the blocking SMTP exchange on its own goroutine so the
// context timeout is honored even while the relay is unresponsive.
func (n *SMTPNotifier) deliver(ctx context.Context, email Email) error {
	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	msg := buildMessage(n.config.From, email)

	done := make(chan error, 1)
	go func() {
		done <- n.sendMail(addr, auth, n.config.From, []string{email.To}, msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// buildMessage assembles a minimal RFC 5322 message with an HTML body.
func buildMessage(from string, email Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
