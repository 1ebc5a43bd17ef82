package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements GenerativeClientInterface on Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Low temperature keeps the structured-JSON contract as stable as the
	// model allows; the sanitizer still assumes the worst.
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.ResponseMIMEType = "application/json"
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
