package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Base URLs for OpenAI-compatible providers.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// OpenAIConfig configures an OpenAI-compatible adapter.
type OpenAIConfig struct {
	Name       string
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// OpenAIAdapter talks to any OpenAI-compatible chat completions API.
type OpenAIAdapter struct {
	client *openai.Client
	name   string
	model  string
}

var _ Provider = (*OpenAIAdapter)(nil)

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(cfg OpenAIConfig) *OpenAIAdapter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}
	name := cfg.Name
	if name == "" {
		name = "openai"
	}
	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(clientCfg),
		name:   name,
		model:  cfg.Model,
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, a.mapError(err)
	}

	out := &Response{
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	if raw, err := json.Marshal(resp); err == nil {
		out.Raw = raw
	}
	return out, nil
}

// mapError turns HTTP-level failures into *UpstreamError.
func (a *OpenAIAdapter) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &UpstreamError{Provider: a.name, Status: apiErr.HTTPStatusCode, Detail: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &UpstreamError{Provider: a.name, Status: reqErr.HTTPStatusCode, Detail: reqErr.Error()}
	}
	return &ProviderError{Provider: a.name, Err: err}
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}
