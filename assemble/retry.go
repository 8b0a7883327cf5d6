package assemble

import (
	"context"
	"time"
)

// NavigateFunc is the signature for a navigation function.
type NavigateFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for navigation retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// navigateWithRetry attempts a navigation with backoff retries. Only the
// top-level profile page is retried; section pages fall back to the
// overview document instead.
func navigateWithRetry(ctx context.Context, url string, navigate NavigateFunc, delays []time.Duration, onRetry func(attempt int, err error)) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := navigate(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if onRetry != nil {
			onRetry(attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
