package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/ksa/internal/logger"
)

// Options carries the optional collaborators wired around the base provider.
type Options struct {
	// EventRepo receives one event per call. Nil disables event logging.
	EventRepo EventRecorder

	// Observer receives call metrics. Nil disables metrics.
	Observer Observer

	// Logger reports event store failures. Optional.
	Logger *logger.Logger

	// Mock is served when the configured provider is "mock". When nil an
	// empty MockProvider is used.
	Mock *MockProvider
}

// NewProvider builds the configured provider and wraps it, outermost first:
// timeout → retry → metrics → logging → base. Each retry attempt is logged and
// measured separately; the timeout covers the whole logical call.
func NewProvider(ctx context.Context, cfg Config, opts Options) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderMock:
		if opts.Mock != nil {
			base = opts.Mock
		} else {
			base = NewMockProvider()
		}
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := base
	if opts.EventRepo != nil {
		p = WithLogging(p, opts.EventRepo, opts.Logger)
	}
	if opts.Observer != nil {
		p = WithMetrics(p, opts.Observer)
	}
	if cfg.Retry.MaxAttempts > 1 {
		p = WithRetry(p, cfg.Retry)
	}
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p, nil
}

// NewProviderFromEnv resolves configuration from KSA_LLM_PROVIDER when set,
// otherwise from the vendors' standard API key variables.
func NewProviderFromEnv(ctx context.Context, opts Options) (Provider, error) {
	var cfg Config
	if os.Getenv("KSA_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM API key found: set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY, or KSA_LLM_PROVIDER")
		}
		cfg = discovered
		cfg.Timeout = ConfigFromEnv().Timeout
	}
	return NewProvider(ctx, cfg, opts)
}
