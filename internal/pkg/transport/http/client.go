// Package http provides the HTTP client used to talk to third-party data
// providers. It wraps the retryablehttp.Client from HashiCorp and adds a
// client-side rate limiter so consecutive requests are spaced out, which keeps
// public APIs from throttling the monitor.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout       time.Duration     // maximum duration for a single HTTP request
	retryWaitMin  time.Duration     // minimum delay between retry attempts
	retryWaitMax  time.Duration     // maximum delay between retry attempts
	retryMax      int               // maximum number of retry attempts
	minRequestGap time.Duration     // minimum spacing between outgoing requests, 0 disables limiting
	userAgent     string            // value of the User-Agent header, empty keeps Go's default
	baseRoundTrip http.RoundTripper // transport wrapped by the limiter
	limiter       *rate.Limiter     // shared limiter, overrides minRequestGap
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// limitedTransport waits on a token bucket before every round trip.
type limitedTransport struct {
	base      http.RoundTripper
	limiter   *rate.Limiter
	userAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}

	return t.base.RoundTrip(req)
}

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:       5 seconds
//   - retryWaitMin:  1 second
//   - retryWaitMax:  5 seconds
//   - retryMax:      2 retries
//   - minRequestGap: 0 (no rate limiting)
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
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

	base := cfg.baseRoundTrip
	if base == nil {
		base = client.HTTPClient.Transport
	}

	transport := &limitedTransport{
		base:      base,
		userAgent: cfg.userAgent,
	}
	switch {
	case cfg.limiter != nil:
		transport.limiter = cfg.limiter
	case cfg.minRequestGap > 0:
		transport.limiter = rate.NewLimiter(rate.Every(cfg.minRequestGap), 1)
	}
	client.HTTPClient.Transport = transport

	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithMinRequestInterval spaces outgoing requests at least d apart.
// A zero or negative duration disables the limiter.
func WithMinRequestInterval(d time.Duration) Option {
	return func(c *config) {
		c.minRequestGap = d
	}
}

// WithLimiter makes the client wait on l, letting several clients share one
// request budget. It takes precedence over WithMinRequestInterval.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *config) {
		c.limiter = l
	}
}

// WithUserAgent sets the User-Agent header on requests that do not carry one.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *config) {
		c.baseRoundTrip = rt
	}
}
