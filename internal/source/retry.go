package source

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryFetcher is a decorator that retries transient failures with
// exponential backoff and jitter before delegating to the wrapped Fetcher.
type RetryFetcher struct {
	inner      Fetcher
	maxRetries int
	baseDelay  time.Duration
	logger     *zap.Logger
}

// WithRetry wraps a fetcher with retry logic. maxRetries is the number of
// additional attempts after the first failure; baseDelay is doubled on each
// subsequent retry.
func WithRetry(inner Fetcher, maxRetries int, baseDelay time.Duration, logger *zap.Logger) *RetryFetcher {
	return &RetryFetcher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		logger:     logger,
	}
}

func (f *RetryFetcher) Name() string { return f.inner.Name() }

// FetchJobs attempts to fetch jobs, retrying on transient errors.
func (f *RetryFetcher) FetchJobs(ctx context.Context) ([]Job, error) {
	jobs, err := f.inner.FetchJobs(ctx)
	if err == nil {
		return jobs, nil
	}
	if !isRetryable(err) {
		return nil, err
	}

	lastErr := err
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		delay := f.backoffDelay(attempt, lastErr)

		f.logger.Warn("retrying after transient error",
			zap.String("source", f.inner.Name()),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", f.maxRetries),
			zap.Duration("delay", delay),
			zap.Error(lastErr),
		)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}

		jobs, err = f.inner.FetchJobs(ctx)
		if err == nil {
			return jobs, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// backoffDelay computes the delay for a given attempt with ±30% jitter. A
// server-supplied Retry-After duration takes precedence.
func (f *RetryFetcher) backoffDelay(attempt int, err error) time.Duration {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.RetryAfter > 0 {
		return httpErr.RetryAfter
	}

	delay := f.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
	}

	jitter := float64(delay) * 0.3
	return time.Duration(float64(delay) + (rand.Float64()*2-1)*jitter)
}

// isRetryable reports whether the error represents a transient failure.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == 429 {
			return true
		}
		if httpErr.StatusCode >= 500 {
			return true
		}
		return false
	}

	// Network-level errors are worth another attempt.
	return true
}
