package llm

import "errors"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider returns a Chat Completions client pointed at
// OpenRouter. Models are always vendor-qualified, so no aliases apply.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	switch {
	case cfg.APIKey == "":
		return nil, errors.New("openrouter: API key is required")
	case cfg.Model == "":
		return nil, errors.New("openrouter: model is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	return newChatCompletions(ProviderOpenRouter, cfg.APIKey, baseURL, cfg.Model), nil
}
