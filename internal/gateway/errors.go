package gateway

import "errors"

var (
	ErrMissingQuestion = errors.New("missing 'question' string")
	ErrNotConfigured   = errors.New("server not configured: OPENAI_API_KEY")
)
