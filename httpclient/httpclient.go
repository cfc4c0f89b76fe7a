package httpclient

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// StatusHandler is an interface for handling HTTP request statuses
type StatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
}

// Options configures request execution
type Options struct {
	MaxAttempts       int           // Number of attempts per Execute call, 1 means single shot
	BaseBackoff       time.Duration // Base delay between attempts
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultOptions returns default execution options
func DefaultOptions() Options {
	return Options{
		MaxAttempts:       1,
		BaseBackoff:       500 * time.Millisecond,
		LogPrefix:         "HTTP",
		ConnectionTimeout: 10 * time.Second, // Default 10s connection timeout
		RequestTimeout:    30 * time.Second, // Default 30s total request timeout
	}
}

// Response is a fully read HTTP reply. Any status code the server returned
// ends up here; only connection-level failures surface as errors.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
	Duration   time.Duration
}

// Client executes HTTP requests with a bounded number of attempts
type Client struct {
	client        *http.Client
	opts          Options
	statusHandler StatusHandler
	limiter       *rate.Limiter
}

// New creates a new Client. The status handler and limiter may be nil; a nil
// limiter means requests are never throttled by this client.
func New(opts Options, handler StatusHandler, limiter *rate.Limiter) *Client {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}

	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &Client{
		client:        client,
		opts:          opts,
		statusHandler: handler,
		limiter:       limiter,
	}
}

// SetStatusHandler sets the status handler for this Client
func (c *Client) SetStatusHandler(handler StatusHandler) {
	c.statusHandler = handler
}

// Execute performs the request and reads the full body. Attempts beyond the
// first happen only for transport-level failures: a reply with any HTTP status
// code, including errors, is returned to the caller for classification.
func (c *Client) Execute(req *http.Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < c.opts.MaxAttempts; attempt++ {
		// Only log retry attempts after the first one
		if attempt > 0 {
			log.Printf("%s: Retry %d/%d after error: %v",
				c.opts.LogPrefix, attempt, c.opts.MaxAttempts-1, lastErr)

			if c.statusHandler != nil {
				c.statusHandler.OnRetry()
			}

			backoffDuration := calculateBackoffWithJitter(c.opts.BaseBackoff, attempt)
			log.Printf("%s: Waiting %.2fs before retry", c.opts.LogPrefix, backoffDuration.Seconds())
			time.Sleep(backoffDuration)
		}

		// Honor the caller-supplied limiter before touching the network
		if c.limiter != nil {
			if err := c.limiter.Wait(req.Context()); err != nil {
				if c.statusHandler != nil {
					c.statusHandler.OnRequest("error")
				}
				return nil, fmt.Errorf("rate limiter wait failed: %w", err)
			}
		}

		requestStart := time.Now()

		resp, err := c.client.Do(req)
		requestDuration := time.Since(requestStart)

		if err != nil {
			lastErr = fmt.Errorf("request failed after %.2fs: %w", requestDuration.Seconds(), err)
			if c.statusHandler != nil {
				c.statusHandler.OnRequest("error")
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("error reading response: %w", err)
			if c.statusHandler != nil {
				c.statusHandler.OnRequest("error")
			}
			continue
		}

		if c.statusHandler != nil {
			c.statusHandler.OnRequest(statusLabel(resp.StatusCode))
		}

		return &Response{
			StatusCode: resp.StatusCode,
			Body:       body,
			Header:     resp.Header,
			Duration:   requestDuration,
		}, nil
	}

	return nil, fmt.Errorf("all %d attempts failed, last error: %w",
		c.opts.MaxAttempts, lastErr)
}

// statusLabel maps an HTTP status code to a metric label
func statusLabel(statusCode int) string {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return "rate_limited"
	case statusCode >= 200 && statusCode < 300:
		return "success"
	default:
		return "error"
	}
}

// calculateBackoffWithJitter calculates backoff duration with jitter for retries
func calculateBackoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return baseBackoff
	}
	if baseBackoff <= 0 {
		return 0
	}

	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(baseBackoff) * float64(multiplier))
	jitter := time.Duration(rand.Int63n(int64(backoff/2) + 1))
	return backoff + jitter
}
