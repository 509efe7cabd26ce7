package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey is the fatal configuration error raised when a
// provider is selected without a credential. It is never retried or
// defaulted.
var ErrMissingAPIKey = errors.New("API key not configured")

// Provider identifies an LLM backend.
type Provider string

const (
	ProviderPerplexity Provider = "perplexity"
	ProviderOpenRouter Provider = "openrouter"
)

// Providers returns the supported backends.
func Providers() []Provider {
	return []Provider{ProviderPerplexity, ProviderOpenRouter}
}

// New creates a client for the given provider. An empty model selects
// the provider default. A missing API key is a configuration error
// surfaced immediately.
func New(provider Provider, apiKey, model string) (Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %w", provider, ErrMissingAPIKey)
	}

	switch Provider(strings.ToLower(string(provider))) {
	case ProviderPerplexity:
		if model != "" {
			return NewPerplexityWithModel(apiKey, model), nil
		}
		return NewPerplexity(apiKey), nil

	case ProviderOpenRouter:
		if model != "" {
			return NewOpenRouterWithModel(apiKey, model), nil
		}
		return NewOpenRouter(apiKey), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: perplexity, openrouter)", provider)
	}
}
