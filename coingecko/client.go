package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/status-im/coingecko-go/httpclient"
	"github.com/status-im/coingecko-go/metrics"
	"golang.org/x/time/rate"
)

// Executor executes a prepared HTTP request; implemented by httpclient.Client
//
//go:generate mockgen -destination=mocks/executor.go -package=mocks . Executor
type Executor interface {
	Execute(req *http.Request) (*httpclient.Response, error)
}

// Options configures a Client. The zero value gets sensible defaults: the
// public base URL, no API key, a single attempt per call and the default
// transport timeouts.
type Options struct {
	// BaseURL including the version segment, e.g. https://api.coingecko.com/api/v3.
	// Pro keys default to the Pro base URL when this is left empty.
	BaseURL string
	// APIKey is optional; the public tier requires none. Demo keys are sent
	// under their own query parameter.
	APIKey string
	// KeyType forces the key classification. Left at NoKey, the type is
	// guessed from the key's format; Pro and demo keys share the CG- prefix,
	// so ambiguous keys need this set explicitly.
	KeyType   KeyType
	UserAgent string

	// MaxAttempts bounds attempts per call, 1 (single shot) by default.
	// Attempts beyond the first happen only for transport failures.
	MaxAttempts       int
	RequestTimeout    time.Duration
	ConnectionTimeout time.Duration

	// Limiter is an optional caller-constructed rate limiter the transport
	// waits on before each request. The client itself never schedules
	// around server rate limits; 429 replies surface as RateLimitError.
	Limiter *rate.Limiter

	// Metrics enables prometheus instrumentation when set
	Metrics *metrics.MetricsWriter
}

// Client translates logical API calls into single HTTP requests against the
// CoinGecko REST API. It holds no per-call state and is safe for concurrent
// use.
type Client struct {
	opts     Options
	keyType  KeyType
	executor Executor
}

// resolveKey classifies the API key and fills the base URL default. Pro keys
// default to the Pro tier.
func (o *Options) resolveKey() KeyType {
	keyType := o.KeyType
	if keyType == NoKey {
		keyType = DetectKeyType(o.APIKey)
	}

	if o.BaseURL == "" {
		if keyType == ProKey {
			o.BaseURL = ProBaseURL
		} else {
			o.BaseURL = PublicBaseURL
		}
	}

	return keyType
}

// New creates a Client with its own HTTP transport
func New(opts Options) *Client {
	keyType := opts.resolveKey()

	httpOpts := httpclient.DefaultOptions()
	httpOpts.LogPrefix = "CoinGecko"
	if opts.MaxAttempts > 0 {
		httpOpts.MaxAttempts = opts.MaxAttempts
	}
	if opts.RequestTimeout > 0 {
		httpOpts.RequestTimeout = opts.RequestTimeout
	}
	if opts.ConnectionTimeout > 0 {
		httpOpts.ConnectionTimeout = opts.ConnectionTimeout
	}

	var handler httpclient.StatusHandler
	if opts.Metrics != nil {
		handler = opts.Metrics
	}

	return &Client{
		opts:     opts,
		keyType:  keyType,
		executor: httpclient.New(httpOpts, handler, opts.Limiter),
	}
}

// NewWithExecutor creates a Client around a custom executor, e.g. a test double
func NewWithExecutor(opts Options, executor Executor) *Client {
	keyType := opts.resolveKey()
	return &Client{
		opts:     opts,
		keyType:  keyType,
		executor: executor,
	}
}

// BaseURL returns the base URL this client issues requests against
func (c *Client) BaseURL() string {
	return c.opts.BaseURL
}

// Call performs one request against the named endpoint and returns the raw
// JSON body. Parameters are validated against the endpoint descriptor before
// any network I/O; failures are classified as the error types in errors.go.
func (c *Client) Call(ctx context.Context, endpoint string, params Params) (json.RawMessage, error) {
	descriptor, ok := LookupEndpoint(endpoint)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpoint)
	}

	path, query, err := resolveParams(descriptor, params)
	if err != nil {
		return nil, err
	}

	rb := NewRequestBuilder(c.opts.BaseURL, path).
		WithMethod(descriptor.Method).
		WithUserAgent(c.opts.UserAgent).
		WithApiKey(c.opts.APIKey, c.keyType)
	for key, value := range query {
		rb.With(key, value)
	}

	req, err := rb.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building request for %q: %w", endpoint, err)
	}

	resp, err := c.executor.Execute(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if c.opts.Metrics != nil {
		c.opts.Metrics.RecordRequestLatency(endpoint, resp.Duration)
	}

	return classifyResponse(resp)
}

// classifyResponse turns an HTTP reply into a raw JSON body or a classified error
func classifyResponse(resp *httpclient.Response) (json.RawMessage, error) {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if !json.Valid(resp.Body) {
			return nil, &MalformedResponseError{
				Body: resp.Body,
				Err:  fmt.Errorf("body is not valid JSON"),
			}
		}
		return json.RawMessage(resp.Body), nil

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{
			RetryAfter: parseRetryAfter(resp.Header),
			Body:       resp.Body,
		}

	case resp.StatusCode >= 500:
		return nil, &ServerError{StatusCode: resp.StatusCode, Body: resp.Body}

	default:
		// Redirects are followed by the transport, so any remaining
		// non-2xx reply below 500 (including a stray 1xx or 304) is
		// the caller's request being rejected
		return nil, &ClientError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
}

// parseRetryAfter reads a delay-seconds Retry-After header, zero when absent
// or unparsable. The HTTP-date form is not used by CoinGecko.
func parseRetryAfter(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		log.Printf("CoinGecko: Ignoring unparsable Retry-After header %q", value)
		return 0
	}

	return time.Duration(seconds) * time.Second
}

// callInto performs Call and decodes the body into out
func (c *Client) callInto(ctx context.Context, endpoint string, params Params, out interface{}) error {
	body, err := c.Call(ctx, endpoint, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &MalformedResponseError{Body: body, Err: err}
	}

	return nil
}
