package llm

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxRetryWindow = 30 * time.Second

// retryTransient runs op with exponential backoff until it succeeds,
// returns a permanent error, or the retry window closes. Providers wrap
// non-retryable failures in backoff.Permanent.
func retryTransient(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second
	policy.MaxElapsedTime = maxRetryWindow
	return backoff.Retry(op, backoff.WithContext(policy, ctx))
}

// transientTransportError reports whether err looks like a transient
// network failure worth retrying. Context cancellation is never retried.
func transientTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
