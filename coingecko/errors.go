package coingecko

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownEndpoint is returned when Call is given a name absent from the
// endpoint table. Matched with errors.Is.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// InvalidParameterError reports a parameter rejected during validation,
// before any network I/O happened.
type InvalidParameterError struct {
	Endpoint string
	Name     string
	Reason   string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q for endpoint %q: %s", e.Name, e.Endpoint, e.Reason)
}

// TransportError wraps a connection-level failure: connection refused,
// timeout, DNS error and the like.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a 2xx reply whose body could not be parsed
// as JSON. Body carries the raw payload for diagnostics.
type MalformedResponseError struct {
	Body []byte
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// RateLimitError reports an HTTP 429 reply. RetryAfter is zero when the
// server did not send a usable Retry-After header.
type RateLimitError struct {
	RetryAfter time.Duration
	Body       []byte
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "rate limit exceeded"
}

// ClientError reports a 4xx reply other than 429
type ClientError struct {
	StatusCode int
	Body       []byte
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("API request rejected with status %d: %s", e.StatusCode, string(e.Body))
}

// ServerError reports a 5xx reply
type ServerError struct {
	StatusCode int
	Body       []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, string(e.Body))
}
