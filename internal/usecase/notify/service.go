// Package notify dispatches transactional email asynchronously. Delivery is
// best-effort: failures are logged and counted, never surfaced to the
// request that triggered them.
package notify

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"globalnews/internal/infra/notifier"
)

// sendTimeout bounds one delivery attempt end to end.
const sendTimeout = 30 * time.Second

// Service dispatches email without blocking the caller.
type Service interface {
	// Dispatch queues one email for background delivery. It never blocks
	// and never returns an error; when the worker pool is saturated the
	// message is dropped and counted.
	Dispatch(ctx context.Context, email notifier.Email)

	// Shutdown waits for in-flight deliveries to complete or the context
	// to expire.
	Shutdown(ctx context.Context) error
}

type service struct {
	notifier notifier.Notifier
	logger   *slog.Logger
	group    *errgroup.Group
}

// NewService creates a notify service delivering through n with at most
// maxConcurrent simultaneous sends.
func NewService(n notifier.Notifier, maxConcurrent int, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrent)
	return &service{notifier: n, logger: logger, group: g}
}

// Dispatch implements Service.
func (s *service) Dispatch(_ context.Context, email notifier.Email) {
	started := s.group.TryGo(func() error {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in email delivery",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		start := time.Now()
		if err := s.notifier.Send(ctx, email); err != nil {
			emailsFailed.Inc()
			s.logger.Warn("email delivery failed",
				slog.String("to", email.To),
				slog.String("subject", email.Subject),
				slog.Duration("duration", time.Since(start)),
				slog.Any("error", err))
			return nil // best-effort: never cancel sibling deliveries
		}

		emailsSent.Inc()
		s.logger.Info("email delivered",
			slog.String("to", email.To),
			slog.String("subject", email.Subject),
			slog.Duration("duration", time.Since(start)))
		return nil
	})

	if !started {
		emailsDropped.Inc()
		s.logger.Warn("email dropped: delivery pool saturated",
			slog.String("to", email.To),
			slog.String("subject", email.Subject))
	}
}

// Shutdown implements Service.
func (s *service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		_ = s.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.logger.Warn("notify service shutdown timeout")
		return ctx.Err()
	}
}
