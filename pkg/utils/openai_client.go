package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Moderate temperature: variety without incoherent schedules.
const chatTemperature = 0.7

type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model string) *OpenAIChatClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIChatClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIChatClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: chatTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyAIResponse
	}
	return resp.Choices[0].Message.Content, nil
}
