package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/closingdesk/contract-extract/internal/vision"
)

// RetryPolicy is an explicit retry description: attempt budget, backoff
// schedule and the predicate deciding which errors are worth retrying.
// Terminal failures (bad request, unparseable response) stop on first
// occurrence — retrying will not fix a malformed instruction.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration // 1-based attempt number
	Retryable   func(error) bool

	// Sleep is swappable for tests; nil means real timer sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy matches the inference-call contract: up to 3 attempts,
// exponential backoff base 1s doubling, capped at 10s, transient errors only.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff:     ExponentialBackoff(time.Second, 10*time.Second),
		Retryable:   vision.IsTransient,
	}
}

// ExponentialBackoff doubles the base delay per attempt, capped.
func ExponentialBackoff(base, max time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		d := base
		for i := 1; i < attempt; i++ {
			d *= 2
			if d >= max {
				return max
			}
		}
		if d > max {
			return max
		}
		return d
	}
}

// Do runs fn under the policy. It returns nil on the first success, the
// terminal error as soon as one is seen, or the last transient error once
// attempts are exhausted. Cancellation interrupts the backoff sleep.
func (p RetryPolicy) Do(ctx context.Context, logger *slog.Logger, op string, fn func(context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepTimer
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			logger.Warn("retry.terminal", "op", op, "attempt", attempt, "error", lastErr)
			return lastErr
		}
		if attempt == p.MaxAttempts {
			break
		}
		delay := p.Backoff(attempt)
		logger.Warn("retry.backoff", "op", op, "attempt", attempt, "delay_ms", delay.Milliseconds(), "error", lastErr)
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}
	logger.Error("retry.exhausted", "op", op, "attempts", p.MaxAttempts, "error", lastErr)
	return lastErr
}

func sleepTimer(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
