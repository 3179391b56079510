package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider and KSA_LLM_PROVIDER.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderMock       = "mock"
)

// Config selects and configures the AI backend.
type Config struct {
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Anthropic  AnthropicConfig
	Retry      RetryConfig

	// Timeout bounds a single logical call, retries included. Expiry is
	// reported as ErrProviderUnavailable. Zero disables the bound.
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string // friendly name or model ID, default "gemini-flash"
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // default "gpt-4o-mini"
	BaseURL string // optional, for OpenAI-compatible gateways
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // default https://openrouter.ai/api/v1
}

type AnthropicConfig struct {
	APIKey string
	Model  string // default "claude-haiku"
}

// RetryConfig controls backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults. Gemini is the default backend.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays KSA_* environment variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setIf := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIf(&cfg.Provider, "KSA_LLM_PROVIDER")

	setIf(&cfg.Gemini.APIKey, "KSA_GEMINI_API_KEY")
	setIf(&cfg.Gemini.Model, "KSA_GEMINI_MODEL")

	setIf(&cfg.OpenAI.APIKey, "KSA_OPENAI_API_KEY")
	setIf(&cfg.OpenAI.Model, "KSA_OPENAI_MODEL")
	setIf(&cfg.OpenAI.BaseURL, "KSA_OPENAI_BASE_URL")

	setIf(&cfg.OpenRouter.APIKey, "KSA_OPENROUTER_API_KEY")
	setIf(&cfg.OpenRouter.Model, "KSA_OPENROUTER_MODEL")

	setIf(&cfg.Anthropic.APIKey, "KSA_ANTHROPIC_API_KEY")
	setIf(&cfg.Anthropic.Model, "KSA_ANTHROPIC_MODEL")

	if v := os.Getenv("KSA_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverConfig looks for the vendors' conventional API key variables, Gemini
// first. It reports false when none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key, envVar string
	switch c.Provider {
	case ProviderGemini:
		key, envVar = c.Gemini.APIKey, "KSA_GEMINI_API_KEY"
	case ProviderOpenAI:
		key, envVar = c.OpenAI.APIKey, "KSA_OPENAI_API_KEY"
	case ProviderOpenRouter:
		key, envVar = c.OpenRouter.APIKey, "KSA_OPENROUTER_API_KEY"
	case ProviderAnthropic:
		key, envVar = c.Anthropic.APIKey, "KSA_ANTHROPIC_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envVar, c.Provider)
	}
	return nil
}
