package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatClient implements ChatClientInterface on the free-tier Gemini
// models. ResponseMIMEType forces clean JSON so no brace-matching hacks are
// needed downstream.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChatClient{client: client, model: model}, nil
}

func (c *GeminiChatClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(chatTemperature)
	m.SetMaxOutputTokens(int32(maxTokens))
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyAIResponse
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
