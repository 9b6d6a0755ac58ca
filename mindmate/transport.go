package mindmate

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// complete runs the retry loop around a backend call.
//
// Up to cfg.MaxAttempts total attempts are made for retryable failures, with
// a fixed cfg.RetryDelay pause between them. The loop terminates early on
// success or on a non-retryable kind; non-retryable failures surface
// immediately without consuming the remaining attempts. Exhausting the budget
// surfaces a KindTransport error that names the attempt count and wraps the
// last failure's message.
func complete(ctx context.Context, pc providerClient, plan callPlan, maxAttempts int, delay time.Duration) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := func() (string, error) {
			callCtx := ctx
			if plan.Timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, plan.Timeout)
				defer cancel()
			}
			return pc.Complete(callCtx, plan)
		}()
		if err == nil {
			return text, nil
		}
		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.Retryable() {
			return "", err
		}

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return "", transportError(ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return "", &APIError{
		Kind:    KindTransport,
		Message: fmt.Sprintf("exhausted %d attempts: %v", maxAttempts, lastErr),
	}
}
