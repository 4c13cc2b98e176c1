// Package retry provides a bounded retry primitive for operations that may
// fail temporarily. It wraps retry-go from Avast behind a small interface with
// functional options.
//
// Two delay strategies are supported: exponential backoff (the default) and a
// fixed delay between attempts, which suits polling a node for data that is
// expected to appear eventually.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
//
// Polling ten times, one second apart:
//
//	r := retry.New(
//	    retry.WithAttempts(10),
//	    retry.WithFixedDelay(time.Second),
//	)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds, the attempt budget is spent or
// the context is done.
type Retry interface {
	// Execute runs operation with the configured retry policy.
	//
	// The operation is attempted immediately, then retried after each failure
	// until it returns nil or the attempt budget is exhausted. Canceling ctx
	// stops retrying and the context error is included in the result.
	//
	// Execute returns nil on success. On failure it returns the last error
	// (or every error, see WithLastErrorOnly).
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint             // maximum number of attempts, including the first
	delay       time.Duration    // base delay between attempts
	maxDelay    time.Duration    // cap for exponential backoff
	fixed       bool             // use a constant delay instead of backoff
	lastErrOnly bool             // return only the last error
	retryIf     func(error) bool // decides whether an error is worth another attempt
	onRetry     func(attempt uint, err error)
}

// Option configures the retry mechanism. Options are applied in order.
type Option func(*config)

// retrier implements Retry using retry-go.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry configured with opts.
//
// Default configuration:
//   - attempts:    3
//   - delay:       1 second, exponential backoff
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
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
	delayType := retry.BackOffDelay
	if r.cfg.fixed {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay used by exponential backoff. Default: 1s.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential backoff delay. Default: 5s.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithFixedDelay switches to a constant delay d between attempts.
//
// The backoff cap is raised to d so it never shortens the delay.
func WithFixedDelay(d time.Duration) Option {
	return func(c *config) {
		c.fixed = true
		c.delay = d
		if c.maxDelay < d {
			c.maxDelay = d
		}
	}
}

// WithLastErrorOnly sets whether only the error of the final attempt is
// returned. When false, every attempt's error is combined. Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf limits retries to errors for which f returns true. Any other
// error stops the loop immediately and is returned as is.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}

// WithOnRetry registers a hook called after every failed attempt that will be
// retried. attempt is zero-based.
func WithOnRetry(f func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
