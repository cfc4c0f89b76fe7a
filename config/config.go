package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/status-im/coingecko-go/coingecko"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// RateLimit represents a simple rpm + burst pair. Zero means unthrottled.
type RateLimit struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// Config holds client settings loadable from a yaml file
type Config struct {
	BaseURL string `yaml:"base_url"`

	// APIKey takes precedence over APIKeyFile when both are set
	APIKey     string `yaml:"api_key"`
	APIKeyFile string `yaml:"api_key_file"`

	// APIKeyType is "pro" or "demo"; empty means the key type is guessed
	// from the key's format
	APIKeyType string `yaml:"api_key_type"`

	UserAgent             string `yaml:"user_agent"`
	TimeoutSeconds        int    `yaml:"timeout_seconds"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`
	MaxAttempts           int    `yaml:"max_attempts"`

	RateLimit RateLimit `yaml:"rate_limit"`
}

// LoadConfig reads a yaml config file and resolves the API key
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	if config.APIKey == "" && config.APIKeyFile != "" {
		key, err := os.ReadFile(config.APIKeyFile)
		if err != nil {
			log.Printf("Warning: Error loading API key from %s: %v. Using public API without authentication.",
				config.APIKeyFile, err)
		} else {
			config.APIKey = strings.TrimSpace(string(key))
		}
	}

	return &config, nil
}

// ClientOptions converts the config into construction options for the client.
// The rate limiter, when configured, is built here on the caller's side; the
// client merely waits on it.
func (c *Config) ClientOptions() coingecko.Options {
	opts := coingecko.Options{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		UserAgent:   c.UserAgent,
		MaxAttempts: c.MaxAttempts,
	}

	switch strings.ToLower(c.APIKeyType) {
	case "pro":
		opts.KeyType = coingecko.ProKey
	case "demo":
		opts.KeyType = coingecko.DemoKey
	case "":
	default:
		log.Printf("Warning: Unknown api_key_type %q, guessing the key type from its format", c.APIKeyType)
	}

	if c.TimeoutSeconds > 0 {
		opts.RequestTimeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	if c.ConnectTimeoutSeconds > 0 {
		opts.ConnectionTimeout = time.Duration(c.ConnectTimeoutSeconds) * time.Second
	}
	if c.RateLimit.RequestsPerMinute > 0 {
		burst := c.RateLimit.Burst
		if burst <= 0 {
			burst = 1
		}
		opts.Limiter = rate.NewLimiter(rate.Limit(float64(c.RateLimit.RequestsPerMinute)/60.0), burst)
	}

	return opts
}
