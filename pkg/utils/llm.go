package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GenerativeClientInterface is the single contract the planner has with any
// text model. Implementations must return the raw response text; callers own
// extraction and validation, since no provider is trusted to emit clean JSON.
type GenerativeClientInterface interface {
	GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Close() error
}

// NewGenerativeClient builds a provider-specific client based on config.
func NewGenerativeClient(provider, apiKey, model string) (GenerativeClientInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		return NewGeminiClient(apiKey, model)
	case "openrouter":
		return NewOpenRouterClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// WithTimeout wraps a client so every generation call carries a deadline.
func WithTimeout(inner GenerativeClientInterface, timeout time.Duration) GenerativeClientInterface {
	if timeout <= 0 {
		return inner
	}
	return &timeoutClient{inner: inner, timeout: timeout}
}

type timeoutClient struct {
	inner   GenerativeClientInterface
	timeout time.Duration
}

func (c *timeoutClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.inner.GenerateContent(ctx, systemPrompt, userPrompt)
}

func (c *timeoutClient) Close() error {
	return c.inner.Close()
}
