package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates no provider has credentials
	ErrNotConfigured = errors.New("llm provider not configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownProvider indicates a provider name with no adapter
	ErrUnknownProvider = errors.New("unknown provider")
)

// UpstreamError is a non-2xx answer from the provider API.
type UpstreamError struct {
	Provider string
	Status   int
	Detail   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider %s: upstream status %d: %s", e.Provider, e.Status, e.Detail)
}

// ProviderError wraps transport and decoding failures
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
