package llmprovider

import (
	"context"
	"encoding/json"
)

// Roles accepted in Message.Role.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized chat-completion request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents a conversation message
type Message struct {
	Role    string
	Content string
}

// Response represents a normalized LLM generation response
type Response struct {
	// Text is the first completion's content, untrimmed.
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
	// Raw is the provider's response body, kept for debug output.
	Raw json.RawMessage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
