package config

import (
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultServerURL            = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientConfig configures the fieldcrypt command line client.
type ClientConfig struct {
	// ServerURL is the base URL of the fieldcrypt server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// EncryptionKey is the base64 key used by the local encrypt and decrypt
	// commands when no --key flag is given.
	// Env: CLIENT_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`
}

// GetClientConfig reads the client configuration from CLIENT_* environment
// variables, fills in defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnvWithPrefix(cfg, "CLIENT_"); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, cfg.validate()
}
