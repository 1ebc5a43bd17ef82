package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient implements GenerativeClientInterface against OpenRouter's
// OpenAI-compatible chat completions endpoint.
type OpenRouterClient struct {
	client *openai.Client
	model  string
}

func NewOpenRouterClient(apiKey, model string) *OpenRouterClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL

	if model == "" {
		model = "meta-llama/llama-3-70b-instruct"
	}

	return &OpenRouterClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenRouterClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openrouter: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenRouterClient) Close() error { return nil }
