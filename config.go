package goSession

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config defines a public type used by goSession APIs.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Token   TokenConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig locates the backend the session authenticates against.
type APIConfig struct {
	BaseURL        string        `env:"GOSESSION_API_BASE_URL"`
	RequestTimeout time.Duration `env:"GOSESSION_API_TIMEOUT"`
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig selects the default credential store backend when none is
// supplied through [Builder.WithCredentialStore]. FilePath enables the file
// backend.
type StorageConfig struct {
	FilePath    string `env:"GOSESSION_CREDENTIALS_FILE"`
	RedisPrefix string `env:"GOSESSION_REDIS_PREFIX"`
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig controls proactive access-token refresh. When the stored
// access token is a JWT whose exp claim falls within RefreshLeeway of now
// and a refresh token exists, identity calls refresh the access token first.
type TokenConfig struct {
	RefreshLeeway time.Duration `env:"GOSESSION_TOKEN_REFRESH_LEEWAY"`
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool `env:"GOSESSION_AUDIT_ENABLED"`
	BufferSize int  `env:"GOSESSION_AUDIT_BUFFER"`
	DropIfFull bool `env:"GOSESSION_AUDIT_DROP_IF_FULL"`
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the in-process metric counters.
type MetricsConfig struct {
	Enabled bool `env:"GOSESSION_METRICS_ENABLED"`
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			RequestTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			RedisPrefix: "gosession",
		},
		Token: TokenConfig{
			RefreshLeeway: 30 * time.Second,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 64,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are values; a copy is a deep copy.
	return cfg
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API BaseURL invalid: %q", c.API.BaseURL)
	}
	if c.API.RequestTimeout < 0 {
		return errors.New("API RequestTimeout must not be negative")
	}
	if c.Token.RefreshLeeway < 0 {
		return errors.New("Token RefreshLeeway must not be negative")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("Audit BufferSize must not be negative")
	}
	return nil
}

// ConfigFromEnv builds a [Config] from defaults overlaid with GOSESSION_*
// environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := defaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
