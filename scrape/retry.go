package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/refscrape"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays applied after a
// rate-limited attempt: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RunWithBackoff runs fn, retrying with the given delays only when it
// fails with ERATELIMITED, the one failure the source explicitly asks
// us to wait out. Every other failure is terminal for the attempt and
// returned immediately: a 404 means the page is gone and a format error
// means the layout changed; repeating the request fixes neither.
// The logger function, if provided, is called before each retry.
func RunWithBackoff(ctx context.Context, fn func(ctx context.Context) error, delays []time.Duration, logger LogFunc) error {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if refscrape.ErrorCode(err) != refscrape.ERATELIMITED {
			return err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  backing off %s (attempt %d): %v", delays[attempt], attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
