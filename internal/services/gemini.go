package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps the generative-text API. One synchronous completion per
// call, no retries.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(apiKey, modelName string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelName: modelName}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// Complete performs a single completion under a fixed system role and returns
// the candidate text trimmed of surrounding whitespace.
func (c *GeminiClient) Complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int32) (string, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxTokens)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("Gemini returned an empty completion")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
