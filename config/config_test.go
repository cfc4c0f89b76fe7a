package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/status-im/coingecko-go/coingecko"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	return tmpfile.Name()
}

// TestLoadConfig verifies the correct loading of configuration parameters
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "valid config",
			configYAML: `
base_url: "https://pro-api.coingecko.com/api/v3"
api_key: "test-key"
api_key_type: "pro"
timeout_seconds: 15
connect_timeout_seconds: 5
max_attempts: 2
user_agent: "price-tool/1.0"
rate_limit:
  requests_per_minute: 30
  burst: 3
`,
			wantErr: false,
			validateCfg: func(t *testing.T, cfg *Config) {
				if cfg.BaseURL != "https://pro-api.coingecko.com/api/v3" {
					t.Errorf("BaseURL = %v, want pro URL", cfg.BaseURL)
				}
				if cfg.APIKey != "test-key" {
					t.Errorf("APIKey = %v, want test-key", cfg.APIKey)
				}
				if cfg.APIKeyType != "pro" {
					t.Errorf("APIKeyType = %v, want pro", cfg.APIKeyType)
				}
				if cfg.TimeoutSeconds != 15 {
					t.Errorf("TimeoutSeconds = %v, want 15", cfg.TimeoutSeconds)
				}
				if cfg.MaxAttempts != 2 {
					t.Errorf("MaxAttempts = %v, want 2", cfg.MaxAttempts)
				}
				if cfg.RateLimit.RequestsPerMinute != 30 {
					t.Errorf("RequestsPerMinute = %v, want 30", cfg.RateLimit.RequestsPerMinute)
				}
				if cfg.RateLimit.Burst != 3 {
					t.Errorf("Burst = %v, want 3", cfg.RateLimit.Burst)
				}
			},
		},
		{
			name: "invalid yaml",
			configYAML: `
timeout_seconds: invalid
`,
			wantErr: true,
		},
		{
			name:       "empty config",
			configYAML: ``,
			wantErr:    false,
			validateCfg: func(t *testing.T, cfg *Config) {
				if cfg.APIKey != "" {
					t.Errorf("APIKey should be empty, got %v", cfg.APIKey)
				}
				if cfg.MaxAttempts != 0 {
					t.Errorf("MaxAttempts should be 0, got %v", cfg.MaxAttempts)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.configYAML)
			defer os.Remove(path)

			cfg, err := LoadConfig(path)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestLoadConfig_APIKeyFile(t *testing.T) {
	dir := t.TempDir()

	keyFile := filepath.Join(dir, "api_key")
	if err := os.WriteFile(keyFile, []byte("file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	path := writeTempConfig(t, "api_key_file: \""+keyFile+"\"\n")
	defer os.Remove(path)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key (trimmed)", cfg.APIKey)
	}
}

func TestLoadConfig_MissingKeyFile(t *testing.T) {
	path := writeTempConfig(t, "api_key_file: \"/nonexistent/key\"\n")
	defer os.Remove(path)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	// A missing key file falls back to the public API without authentication
	if cfg.APIKey != "" {
		t.Errorf("APIKey should be empty on missing key file, got %q", cfg.APIKey)
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &Config{
		BaseURL:               "https://api.coingecko.com/api/v3",
		APIKey:                "key",
		UserAgent:             "price-tool/1.0",
		TimeoutSeconds:        20,
		ConnectTimeoutSeconds: 5,
		MaxAttempts:           3,
		RateLimit:             RateLimit{RequestsPerMinute: 60, Burst: 2},
	}

	opts := cfg.ClientOptions()

	if opts.BaseURL != cfg.BaseURL {
		t.Errorf("BaseURL = %v, want %v", opts.BaseURL, cfg.BaseURL)
	}
	if opts.APIKey != "key" {
		t.Errorf("APIKey = %v, want key", opts.APIKey)
	}
	if opts.RequestTimeout != 20*time.Second {
		t.Errorf("RequestTimeout = %v, want 20s", opts.RequestTimeout)
	}
	if opts.ConnectionTimeout != 5*time.Second {
		t.Errorf("ConnectionTimeout = %v, want 5s", opts.ConnectionTimeout)
	}
	if opts.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %v, want 3", opts.MaxAttempts)
	}
	if opts.Limiter == nil {
		t.Error("Limiter should be built when requests_per_minute is set")
	} else if opts.Limiter.Burst() != 2 {
		t.Errorf("Limiter burst = %v, want 2", opts.Limiter.Burst())
	}
}

func TestClientOptions_APIKeyType(t *testing.T) {
	tests := []struct {
		name    string
		keyType string
		want    coingecko.KeyType
	}{
		{name: "pro", keyType: "pro", want: coingecko.ProKey},
		{name: "demo", keyType: "demo", want: coingecko.DemoKey},
		{name: "case insensitive", keyType: "Pro", want: coingecko.ProKey},
		{name: "empty leaves detection to the client", keyType: "", want: coingecko.NoKey},
		{name: "unknown value falls back to detection", keyType: "enterprise", want: coingecko.NoKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{APIKey: "CG-some-key", APIKeyType: tt.keyType}

			opts := cfg.ClientOptions()

			if opts.KeyType != tt.want {
				t.Errorf("KeyType = %v, want %v", opts.KeyType, tt.want)
			}
		})
	}
}

func TestClientOptions_NoThrottle(t *testing.T) {
	cfg := &Config{}

	opts := cfg.ClientOptions()

	if opts.Limiter != nil {
		t.Error("Limiter should be nil when no rate limit is configured")
	}
}
