package utils

import "context"

// ChatClientInterface is the single seam to the AI endpoint. Implementations
// send one system + one user message and return the raw response text, which
// the planner then validates. No retries happen at this layer.
type ChatClientInterface interface {
	GenerateJSON(ctx context.Context, systemPrompt string, userPrompt string, maxTokens int) (string, error)
}
