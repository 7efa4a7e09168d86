package goSession

import (
	"errors"
	"net/http"

	"github.com/MrEthical07/goSession/apiclient"
	"github.com/MrEthical07/goSession/credstore"
)

// Builder assembles a [Session]. Configure it during initialization, call
// [Builder.Build] once, and treat the result as the process-wide session.
type Builder struct {
	config     Config
	store      credstore.Store
	httpClient *http.Client
	auditSink  AuditSink

	built bool
}

// New creates a Builder with default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithCredentialStore sets the durable credential store. When omitted,
// Build opens a file store at [StorageConfig].FilePath.
func (b *Builder) WithCredentialStore(store credstore.Store) *Builder {
	b.store = store
	return b
}

// WithHTTPClient sets the underlying HTTP client. When omitted, Build
// constructs one with [APIConfig].RequestTimeout.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithAuditSink sets the destination for audit events. Only consulted when
// [AuditConfig].Enabled is true.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and constructs the [Session].
func (b *Builder) Build() (*Session, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := b.store
	if store == nil {
		if cfg.Storage.FilePath == "" {
			return nil, errors.New("credential store required (set Storage.FilePath or use WithCredentialStore)")
		}
		fileStore, err := credstore.NewFile(cfg.Storage.FilePath)
		if err != nil {
			return nil, err
		}
		store = fileStore
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.RequestTimeout}
	}

	api, err := apiclient.NewClient(cfg.API.BaseURL, httpClient, storeTokenSource{store: store})
	if err != nil {
		return nil, err
	}

	session := &Session{
		config:  cfg,
		store:   store,
		api:     api,
		audit:   newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics: NewMetrics(cfg.Metrics),
		phase:   PhaseUnhydrated,
	}

	b.built = true

	return session, nil
}
