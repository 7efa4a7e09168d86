package goSession

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) { c.API.BaseURL = "http://localhost:5000" }, false},
		{"missing base url", func(c *Config) {}, true},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }, true},
		{"schemeless base url", func(c *Config) { c.API.BaseURL = "localhost:5000" }, true},
		{"negative timeout", func(c *Config) {
			c.API.BaseURL = "http://localhost:5000"
			c.API.RequestTimeout = -time.Second
		}, true},
		{"negative leeway", func(c *Config) {
			c.API.BaseURL = "http://localhost:5000"
			c.Token.RefreshLeeway = -time.Second
		}, true},
		{"negative audit buffer", func(c *Config) {
			c.API.BaseURL = "http://localhost:5000"
			c.Audit.Enabled = true
			c.Audit.BufferSize = -1
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := defaultConfig()
	if cfg.API.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.API.RequestTimeout)
	}
	if cfg.Token.RefreshLeeway != 30*time.Second {
		t.Fatalf("unexpected default leeway: %v", cfg.Token.RefreshLeeway)
	}
	if cfg.Audit.BufferSize != 64 || !cfg.Audit.DropIfFull {
		t.Fatalf("unexpected audit defaults: %+v", cfg.Audit)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics must be opt-in")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GOSESSION_API_BASE_URL", "http://erp.internal:5000")
	t.Setenv("GOSESSION_API_TIMEOUT", "3s")
	t.Setenv("GOSESSION_TOKEN_REFRESH_LEEWAY", "45s")
	t.Setenv("GOSESSION_AUDIT_ENABLED", "true")
	t.Setenv("GOSESSION_METRICS_ENABLED", "true")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}

	if cfg.API.BaseURL != "http://erp.internal:5000" {
		t.Fatalf("base url not read: %q", cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeout != 3*time.Second {
		t.Fatalf("timeout not read: %v", cfg.API.RequestTimeout)
	}
	if cfg.Token.RefreshLeeway != 45*time.Second {
		t.Fatalf("leeway not read: %v", cfg.Token.RefreshLeeway)
	}
	if !cfg.Audit.Enabled || !cfg.Metrics.Enabled {
		t.Fatal("boolean toggles not read")
	}
	// Unset variables keep their defaults.
	if cfg.Audit.BufferSize != 64 {
		t.Fatalf("default lost under env overlay: %d", cfg.Audit.BufferSize)
	}
}

func TestConfigFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("GOSESSION_API_TIMEOUT", "soon")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}
