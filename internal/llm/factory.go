package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/algeblast/internal/store"
)

// NewProvider creates a Provider from configuration. When eventRepo is
// non-nil every call is recorded. Each call is attempted once.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		p   Provider
		err error
	)

	switch cfg.Provider {
	case ProviderAnthropic:
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		p, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		p = NewCanned()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo, logger)
	}
	return p, nil
}

// NewProviderFromEnv discovers API keys from the environment, applies the
// provider and model overrides when non-empty, and builds a provider. A
// known backend without a key yields an error wrapping ErrNotConfigured.
func NewProviderFromEnv(ctx context.Context, provider, model string, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	cfg, _ := DiscoverConfig()
	cfg = cfg.WithOverrides(provider, model)
	if err := cfg.Validate(); err != nil {
		if knownProvider(cfg.Provider) {
			return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo, logger)
}

func knownProvider(name string) bool {
	switch name {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter, ProviderMock:
		return true
	}
	return false
}
