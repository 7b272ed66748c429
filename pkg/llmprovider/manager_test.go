package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	err       error
	response  *Response
	delay     time.Duration
	callCount int
	lastReq   *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func userRequest(text string) *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Content: text}}}
}

func TestGenerateContent_Success(t *testing.T) {
	expected := &Response{
		Text:         "Your break is 30 minutes.",
		ProviderName: "openai",
		ModelName:    "gpt-4o-mini",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 8, TotalTokens: 108},
	}
	provider := &mockProvider{name: "openai", model: "gpt-4o-mini", response: expected}
	logger := &mockLogger{}

	manager := NewManager(provider, &Config{RequestTimeout: time.Second}, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest("break?"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp != expected {
		t.Errorf("Expected response to be passed through")
	}
	if provider.callCount != 1 {
		t.Errorf("Expected 1 call, got %d", provider.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 success log, got %d", len(logger.infoMessages))
	}
}

func TestGenerateContent_NotConfigured(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})

	if manager.Configured() {
		t.Fatal("Expected manager without provider to be unconfigured")
	}
	_, err := manager.GenerateContent(context.Background(), userRequest("hi"))
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Expected ErrNotConfigured, got: %v", err)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	provider := &mockProvider{name: "openai"}
	manager := NewManager(provider, nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("Expected ErrInvalidRequest, got: %v", err)
	}
	if provider.callCount != 0 {
		t.Errorf("Provider must not be called for an empty request")
	}
}

func TestGenerateContent_NoRetryOnFailure(t *testing.T) {
	upstream := &UpstreamError{Provider: "openai", Status: 429, Detail: "rate limited"}
	provider := &mockProvider{name: "openai", err: upstream}
	logger := &mockLogger{}
	manager := NewManager(provider, nil, logger)

	_, err := manager.GenerateContent(context.Background(), userRequest("hi"))

	var got *UpstreamError
	if !errors.As(err, &got) || got.Status != 429 {
		t.Fatalf("Expected *UpstreamError 429, got: %v", err)
	}
	if provider.callCount != 1 {
		t.Errorf("Expected exactly 1 call, got %d", provider.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 failure log, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_Timeout(t *testing.T) {
	provider := &mockProvider{name: "slow", delay: time.Second, response: &Response{}}
	manager := NewManager(provider, &Config{RequestTimeout: 20 * time.Millisecond}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), userRequest("hi"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline exceeded, got: %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("Timeout was not enforced")
	}
}

func TestNewManager_DefaultTimeout(t *testing.T) {
	manager := NewManager(&mockProvider{}, &Config{}, &mockLogger{})
	if manager.config.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %s, got %s", DefaultRequestTimeout, manager.config.RequestTimeout)
	}
}

func TestManager_ResolvesProviderLazily(t *testing.T) {
	provider := &mockProvider{name: "openai", model: "gpt-4o-mini", response: &Response{Text: "Friday."}}
	var key string
	resolves := 0

	manager := NewManager(nil, nil, &mockLogger{})
	manager.SetResolver(func() (Provider, error) {
		resolves++
		if key == "" {
			return nil, ErrNotConfigured
		}
		return provider, nil
	})

	if manager.Configured() {
		t.Fatal("expected not configured before the key is set")
	}
	req := userRequest("payday?")
	if _, err := manager.GenerateContent(context.Background(), req); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	key = "sk-test"
	if !manager.Configured() || manager.Model() != "gpt-4o-mini" {
		t.Fatal("expected provider to resolve once the key is set")
	}
	resp, err := manager.GenerateContent(context.Background(), req)
	if err != nil || resp.Text != "Friday." {
		t.Fatalf("GenerateContent() = %+v, %v", resp, err)
	}

	before := resolves
	manager.Configured()
	if resolves != before {
		t.Errorf("resolver called again after a provider was found")
	}
}
