package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"mccrew-ai/config"
	"mccrew-ai/pkg/gemini"
)

// Default models per provider name.
var defaultModels = map[string]string{
	"openai":   "gpt-4o-mini",
	"deepseek": "deepseek-chat",
	"qwen":     "qwen-plus",
	"gemini":   gemini.DefaultModel,
}

// InitializeProvider returns the highest-priority enabled provider that has an
// API key. It returns ErrNotConfigured when none qualifies.
func InitializeProvider(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	// Filter enabled providers with credentials
	var candidates []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled && p.APIKey != "" {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNotConfigured
	}

	// Sort by priority (ascending order)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority < candidates[j].Priority
	})

	return createProvider(candidates[0])
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	name := strings.ToLower(cfg.Name)
	if name == "alibaba" {
		name = "qwen"
	}

	model := cfg.Model
	if model == "" {
		model = defaultModels[name]
	}

	var httpClient *http.Client
	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	switch name {
	case "openai", "deepseek", "qwen":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			switch name {
			case "deepseek":
				baseURL = DeepSeekBaseURL
			case "qwen":
				baseURL = QwenBaseURL
			}
		}
		return NewOpenAIAdapter(OpenAIConfig{
			Name:       name,
			APIKey:     cfg.APIKey,
			BaseURL:    baseURL,
			Model:      model,
			HTTPClient: httpClient,
		}), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}
