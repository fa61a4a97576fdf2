// Package httpclient provides the retrying HTTP client used to read remote spreadsheets
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultTimeout is the per-request timeout used when none is given
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the number of attempts made for retryable failures
	DefaultMaxRetries = 3

	// maxResponseSize caps the accepted response body
	maxResponseSize = 20 << 20

	userAgent = "crane-dashboard/1.0"

	maxErrorMessage = 1024
)

// Client fetches raw response bodies over HTTP
type Client interface {
	// Get performs a GET request and returns the body of a 2xx response
	Get(ctx context.Context, url string) ([]byte, error)
}

type defaultClient struct {
	rc            *resty.Client
	maxRetries    uint
	retryInterval time.Duration
}

// Option configures the default client
type Option func(*defaultClient)

// WithMaxRetries sets the number of attempts for 5xx, 429 and transport failures
func WithMaxRetries(n uint) Option {
	return func(c *defaultClient) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryInterval sets the first backoff interval
func WithRetryInterval(d time.Duration) Option {
	return func(c *defaultClient) {
		if d > 0 {
			c.retryInterval = d
		}
	}
}

// NewDefaultClient creates a resty backed client. A zero timeout uses DefaultTimeout.
func NewDefaultClient(timeout time.Duration, opts ...Option) Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &defaultClient{
		rc: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", "application/json"),
		maxRetries:    DefaultMaxRetries,
		retryInterval: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get implements Client.Get
func (c *defaultClient) Get(ctx context.Context, rawURL string) ([]byte, error) {
	if _, err := url.Parse(rawURL); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval

	return backoff.Retry(ctx, func() ([]byte, error) {
		data, err := c.get(ctx, rawURL)
		if err == nil {
			return data, nil
		}
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && !httpErr.Retryable() {
			return nil, backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(c.maxRetries),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.WarnContext(ctx, "Request failed, retrying",
				"url", redact(rawURL), "error", err, "retry_in", next)
		}),
	)
}

func (c *defaultClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redact(urlErr.URL)
		}
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	body := resp.RawBody()
	defer func() {
		_ = body.Close()
	}()

	if resp.RawResponse.ContentLength > maxResponseSize {
		return nil, fmt.Errorf("response size %d bytes exceeds maximum allowed size of %.2f MB",
			resp.RawResponse.ContentLength, float64(maxResponseSize)/(1<<20))
	}

	data, err := io.ReadAll(io.LimitReader(body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxResponseSize {
		return nil, fmt.Errorf("response body exceeds maximum allowed size of %.2f MB",
			float64(maxResponseSize)/(1<<20))
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		message := string(data)
		if len(message) > maxErrorMessage {
			message = message[:maxErrorMessage]
		}
		return nil, NewHTTPError(resp.StatusCode(), redact(rawURL), message)
	}
	return data, nil
}

// redact drops the query string, which carries the API key
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	return u.String()
}
