// Package http builds the retrying HTTP clients used to reach JSON-RPC
// endpoints. It wraps retryablehttp from HashiCorp and exposes functional
// options for the timeout and retry policy.
package http

import (
	"net/http"
	"time"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient returns a retryablehttp.Client configured with opts. Defaults:
//
//   - timeout:      10 seconds
//   - retryWaitMin: 500 milliseconds
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//
// Retried requests are reported through the package logger at warn level.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      10 * time.Second,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.RequestLogHook = logRetry
	return client
}

// NewStandardClient returns a plain *http.Client whose transport retries
// through retryablehttp. It suits libraries that only accept *http.Client.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

func logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	logger.Warn(req.Context(), "retrying rpc request",
		"http.host", req.URL.Host,
		"http.attempt", attempt,
	)
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retries for a failed request.
// Zero disables retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
