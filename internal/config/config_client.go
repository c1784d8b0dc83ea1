package config

import (
	"fmt"
	"time"
)

// clientEnvPrefix keeps client variables apart from the server's.
const clientEnvPrefix = "CLIENT_"

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used to sign request bodies. Must match the
	// server's APP_HASH_KEY when the server enforces integrity checks.
	HashKey string `env:"HASH_KEY"`

	// Token is a bearer token from a previous login.
	Token string `env:"TOKEN"`

	// LogFile is where the client writes its logs; stderr when empty.
	LogFile string `env:"LOG_FILE"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the server.
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"SERVER_"`
}

// GetClientConfig builds and validates the client configuration from
// environment variables, then applies overrides (typically command-line
// flags) on top of it. Empty override fields are ignored.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg, clientEnvPrefix); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if overrides.Adapter.HTTPAddress != "" {
		cfg.Adapter.HTTPAddress = overrides.Adapter.HTTPAddress
	}
	if overrides.Adapter.RequestTimeout != 0 {
		cfg.Adapter.RequestTimeout = overrides.Adapter.RequestTimeout
	}
	if overrides.App.HashKey != "" {
		cfg.App.HashKey = overrides.App.HashKey
	}
	if overrides.App.Token != "" {
		cfg.App.Token = overrides.App.Token
	}
	if overrides.App.LogFile != "" {
		cfg.App.LogFile = overrides.App.LogFile
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}

	return cfg, cfg.validate()
}
