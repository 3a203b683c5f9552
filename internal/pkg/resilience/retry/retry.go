// Package retry runs operations that may fail transiently (for example a
// request to a blockchain data provider) under exponential backoff. It wraps
// the retry-go package from Avast behind a small interface configured with
// functional options.
//
// Basic usage:
//
//	r := retry.New(retry.WithAttempts(5))
//	err := r.Execute(ctx, func() error {
//	    txs, err = fetcher.FetchTransactions(ctx, address)
//	    return err
//	})
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation with automatic retry logic.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted or
	// ctx is done. Operations wrapped with Unrecoverable are not retried.
	//
	// It returns nil on success, the last error (or all of them, depending on
	// WithLastErrorOnly) once attempts are exhausted, or the context error.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is called after every failed attempt that will be retried.
// attempt is zero-based.
type OnRetryFunc func(attempt uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts, including the first one
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // cap applied to the exponential delay
	lastErrOnly bool          // whether to return only the last error
	onRetry     OnRetryFunc   // optional hook invoked before sleeping
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options.
//
// Defaults:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
		retry.RetryIf(retryable),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// retryable replaces retry-go's default check, so it must keep honoring
// Unrecoverable itself.
func retryable(err error) bool {
	return retry.IsRecoverable(err) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// Unrecoverable marks err so Execute returns it immediately without retrying.
// Use it for failures that another attempt cannot fix, such as a 4xx response.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. Later delays grow exponentially.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether to return only the last error or all of them joined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a hook invoked after each failed attempt that will be retried.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
