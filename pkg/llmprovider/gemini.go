package llmprovider

import (
	"context"
	"errors"
	"strings"

	"mccrew-ai/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

var _ Provider = (*GeminiAdapter)(nil)

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface. System messages are joined
// into the system instruction; assistant turns become "model" turns.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var system []string
	geminiReq := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			geminiReq.Messages = append(geminiReq.Messages, gemini.Message{Role: gemini.RoleModel, Text: m.Content})
		default:
			geminiReq.Messages = append(geminiReq.Messages, gemini.Message{Role: gemini.RoleUser, Text: m.Content})
		}
	}
	geminiReq.SystemInstruction = strings.Join(system, "\n\n")

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			return nil, &UpstreamError{Provider: a.Name(), Status: apiErr.StatusCode, Detail: apiErr.Body}
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Raw: resp.Raw,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
