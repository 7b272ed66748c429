package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Crew assistant
	Gateway   GatewayConfig
	Store     StoreConfig
	Session   SessionConfig
	Telegram  TelegramConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GatewayConfig controls prompt assembly for the completion gateway.
type GatewayConfig struct {
	StoreName   string
	Persona     string
	Knowledge   string
	Temperature float64
	MaxTokens   int
	TopicGuard  bool
	// SendCatalogue makes the chat router send the knowledge base as kb.
	SendCatalogue bool
}

// StoreConfig selects the crew repository backend.
type StoreConfig struct {
	Driver   string // memory | sqlite | postgres
	DSN      string
	Timezone string
	SeedDemo bool
}

// SessionConfig selects where quiz and break state lives.
type SessionConfig struct {
	Backend       string // memory | redis
	TTL           time.Duration
	Size          int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	PerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers      []ProviderConfig `yaml:"providers"`
	RequestTimeout string           `yaml:"request_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`

	// APIKeyRef is the raw api_key value, e.g. "${OPENAI_API_KEY}".
	APIKeyRef string `yaml:"-"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gateway
	cfg.Gateway.StoreName = viper.GetString("gateway.store_name")
	cfg.Gateway.Persona = viper.GetString("gateway.persona")
	cfg.Gateway.Knowledge = viper.GetString("gateway.kb")
	cfg.Gateway.Temperature = viper.GetFloat64("gateway.temperature")
	cfg.Gateway.MaxTokens = viper.GetInt("gateway.max_tokens")
	cfg.Gateway.TopicGuard = viper.GetBool("gateway.topic_guard")
	cfg.Gateway.SendCatalogue = viper.GetBool("gateway.send_catalogue")

	// Store
	cfg.Store.Driver = strings.ToLower(viper.GetString("store.driver"))
	cfg.Store.DSN = viper.GetString("store.dsn")
	cfg.Store.Timezone = viper.GetString("store.timezone")
	cfg.Store.SeedDemo = viper.GetBool("store.seed_demo")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Store.DSN = dsn
	}

	// Session
	cfg.Session.Backend = strings.ToLower(viper.GetString("session.backend"))
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.Size = viper.GetInt("session.size")
	cfg.Session.RedisAddr = viper.GetString("session.redis.addr")
	cfg.Session.RedisPassword = viper.GetString("session.redis.password")
	cfg.Session.RedisDB = viper.GetInt("session.redis.db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Session.RedisAddr = redisAddr
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// LLM Provider Abstraction
	cfg.LLM.RequestTimeout = viper.GetString("llm.request_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					keyRef := getStringFromMap(providerMap, "api_key")
					provider := ProviderConfig{
						Name:      getStringFromMap(providerMap, "name"),
						Enabled:   getBoolFromMap(providerMap, "enabled"),
						Priority:  getIntFromMap(providerMap, "priority"),
						APIKey:    expandEnvVar(keyRef),
						APIKeyRef: keyRef,
						BaseURL:   getStringFromMap(providerMap, "base_url"),
						Model:     getStringFromMap(providerMap, "model"),
						Timeout:   getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// OPENAI_API_KEY alone enables the default provider.
	if len(cfg.LLM.Providers) == 0 {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{DefaultOpenAIProvider(key)}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCurrentKeys returns a copy of the LLM config with API keys read from the
// environment as it is now, so a key exported after startup is picked up.
func (c LLMConfig) WithCurrentKeys() LLMConfig {
	out := LLMConfig{RequestTimeout: c.RequestTimeout}
	for _, p := range c.Providers {
		if p.APIKeyRef != "" {
			p.APIKey = expandEnvVar(p.APIKeyRef)
		}
		out.Providers = append(out.Providers, p)
	}
	if len(out.Providers) == 0 {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			out.Providers = []ProviderConfig{DefaultOpenAIProvider(key)}
		}
	}
	return out
}

// DefaultOpenAIProvider is the provider used when only OPENAI_API_KEY is set.
func DefaultOpenAIProvider(apiKey string) ProviderConfig {
	return ProviderConfig{
		Name:     "openai",
		Enabled:  true,
		Priority: 1,
		APIKey:   apiKey,
		Model:    "gpt-4o-mini",
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gateway.store_name", "McDonald's")
	viper.SetDefault("gateway.temperature", 0.4)
	viper.SetDefault("gateway.max_tokens", 220)
	viper.SetDefault("gateway.topic_guard", true)

	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("store.timezone", "Europe/London")
	viper.SetDefault("store.seed_demo", true)

	viper.SetDefault("session.backend", "memory")
	viper.SetDefault("session.ttl", "2h")
	viper.SetDefault("session.size", 10000)
	viper.SetDefault("session.redis.addr", "localhost:6379")

	viper.SetDefault("rate_limit.per_min", 30)

	viper.SetDefault("llm.request_timeout", "25s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig checks provider entries. An empty list is allowed: the
// gateway then answers every request with a "not configured" error.
func validateLLMConfig(cfg *LLMConfig) error {
	if cfg.RequestTimeout != "" {
		if _, err := time.ParseDuration(cfg.RequestTimeout); err != nil {
			return fmt.Errorf("llm.request_timeout: %w", err)
		}
	}

	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
