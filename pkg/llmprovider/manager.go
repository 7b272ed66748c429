package llmprovider

import (
	"context"
	"sync"
	"time"

	"mccrew-ai/pkg/log"
)

// DefaultRequestTimeout bounds a single completion call.
const DefaultRequestTimeout = 25 * time.Second

// Manager performs one completion call against the active provider.
// A nil provider is allowed and reports ErrNotConfigured on every call,
// unless a resolver finds one later.
type Manager struct {
	config *Config
	logger log.Logger

	mu       sync.Mutex
	provider Provider
	resolve  ResolveFunc
}

// ResolveFunc builds a provider from the current configuration. It returns
// ErrNotConfigured while no credential is available.
type ResolveFunc func() (Provider, error)

// Config defines configuration for the Provider Manager
type Config struct {
	RequestTimeout time.Duration
}

// NewManager creates a new Provider Manager with the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// SetResolver lets a manager started without credentials pick up a provider
// once its key appears. The first provider resolved is kept.
func (m *Manager) SetResolver(fn ResolveFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolve = fn
}

// active returns the current provider, resolving it when none is set.
func (m *Manager) active() Provider {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.provider == nil && m.resolve != nil {
		if p, err := m.resolve(); err == nil && p != nil {
			m.provider = p
			m.logger.Infof(context.Background(), "llmprovider.Manager: provider=%s model=%s resolved", p.Name(), p.Model())
		}
	}
	return m.provider
}

// Configured reports whether a provider is available.
func (m *Manager) Configured() bool {
	return m.active() != nil
}

// Model returns the active model, or "" when not configured.
func (m *Manager) Model() string {
	p := m.active()
	if p == nil {
		return ""
	}
	return p.Model()
}

// GenerateContent makes exactly one provider call bounded by RequestTimeout.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	provider := m.active()
	if provider == nil {
		return nil, ErrNotConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.RequestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := provider.GenerateContent(ctx, req)
	if err != nil {
		m.logFailure(ctx, provider, err, time.Since(start))
		return nil, err
	}

	m.logSuccess(ctx, provider, resp, time.Since(start))
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, p Provider, resp *Response, took time.Duration) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "llmprovider.Manager: provider=%s model=%s input_tokens=%d output_tokens=%d took=%s",
		p.Name(), p.Model(), in, out, took)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, p Provider, err error, took time.Duration) {
	m.logger.Warnf(ctx, "llmprovider.Manager: provider=%s model=%s took=%s: %v",
		p.Name(), p.Model(), took, err)
}
