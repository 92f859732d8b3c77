package aigen

import (
	"context"
	"fmt"
	"time"
)

type Config struct {
	// Provider is one of "openai", "anthropic", "gemini" or "offline"; "mock"
	// is accepted as an alias for "offline".
	Provider string

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig

	// Timeout bounds one generation call including retries.
	Timeout time.Duration
	// Retries is the number of extra attempts on transient failures.
	Retries uint
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI compatible gateways
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// NewProvider builds the configured provider.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "offline", "mock":
		return OfflineProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}
