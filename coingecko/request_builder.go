package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	// Base URL for the public API, including the version segment
	PublicBaseURL = "https://api.coingecko.com/api/v3"
	// Base URL for the Pro API, including the version segment
	ProBaseURL = "https://pro-api.coingecko.com/api/v3"

	defaultUserAgent = "Mozilla/5.0 coingecko-go"
)

// KeyType defines the API key type
type KeyType int

const (
	// NoKey means no API key is configured
	NoKey KeyType = iota
	// ProKey means using a Pro API key
	ProKey
	// DemoKey means using a demo API key
	DemoKey
)

// DetectKeyType guesses an API key's tier from its format. Pro and demo keys
// both use the CG- prefix, so this is a fallback only; ambiguous keys are
// classified explicitly through Options.KeyType.
func DetectKeyType(apiKey string) KeyType {
	if apiKey == "" {
		return NoKey
	}
	if strings.HasPrefix(apiKey, "demo_") ||
		strings.HasPrefix(apiKey, "CG-") ||
		strings.Contains(strings.ToLower(apiKey), "demo") {
		return DemoKey
	}
	return ProKey
}

// joinURL safely combines a base URL with a path
func joinURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// RequestBuilder implements the Builder pattern for CoinGecko API requests
type RequestBuilder struct {
	// Basic request parameters
	baseURL    string
	httpMethod string
	apiPath    string

	// Request specific parameters
	params map[string]string

	// API key information
	apiKey  string
	keyType KeyType

	// Other options
	userAgent string
	headers   map[string]string
}

// NewRequestBuilder creates a new request builder for the given endpoint path
func NewRequestBuilder(baseURL, apiPath string) *RequestBuilder {
	rb := &RequestBuilder{
		baseURL:    baseURL,
		apiPath:    apiPath,
		httpMethod: http.MethodGet,
		params:     make(map[string]string),
		headers:    make(map[string]string),
		userAgent:  defaultUserAgent,
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// WithMethod sets the HTTP verb, GET by default
func (rb *RequestBuilder) WithMethod(method string) *RequestBuilder {
	if method != "" {
		rb.httpMethod = method
	}
	return rb
}

// With adds a custom parameter to the URL query
func (rb *RequestBuilder) With(key, value string) *RequestBuilder {
	rb.params[key] = value
	return rb
}

// WithApiKey sets the API key and its type
func (rb *RequestBuilder) WithApiKey(apiKey string, keyType KeyType) *RequestBuilder {
	rb.apiKey = apiKey
	rb.keyType = keyType
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *RequestBuilder) WithHeader(name, value string) *RequestBuilder {
	rb.headers[name] = value
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *RequestBuilder) WithUserAgent(userAgent string) *RequestBuilder {
	if userAgent != "" {
		rb.userAgent = userAgent
	}
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *RequestBuilder) BuildURL() string {
	fullPath := joinURL(rb.baseURL, rb.apiPath)

	query := url.Values{}

	for key, value := range rb.params {
		query.Add(key, value)
	}

	// Add API key if available
	if rb.apiKey != "" {
		switch rb.keyType {
		case ProKey:
			query.Add("x_cg_pro_api_key", rb.apiKey)
		case DemoKey:
			query.Add("x_cg_demo_api_key", rb.apiKey)
		}
	}

	finalURL := fullPath
	queryString := query.Encode()
	if queryString != "" {
		finalURL = fmt.Sprintf("%s?%s", finalURL, queryString)
	}

	return finalURL
}

// Build creates an http.Request bound to the given context
func (rb *RequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	finalURL := rb.BuildURL()

	req, err := http.NewRequestWithContext(ctx, rb.httpMethod, finalURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
