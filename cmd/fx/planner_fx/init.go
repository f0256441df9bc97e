package planner_fx

import (
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"wayfare/internal/knowledge"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	provideDestinationSource,
	provideSuggestionService,
	providePlannerService,
	provideSpendingService)

// ChatConfig holds configuration for chat completion clients.
type ChatConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideChatClient creates a chat client based on environment variables.
// Missing credentials are not fatal: the planner serves fallback itineraries
// with a nil client, so the app stays usable without an API key.
func ProvideChatClient() utils.ChatClientInterface {
	config := getChatConfig()

	if config.APIKey == "" {
		log.Printf("No %s API key configured, itineraries will use the built-in generator", config.Provider)
		return nil
	}

	log.Printf("Initializing %s chat client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "gemini":
		client, err := utils.NewGeminiChatClient(config.APIKey, config.Model)
		if err != nil {
			log.Printf("Failed to create Gemini client, falling back to built-in generator: %v", err)
			return nil
		}
		return client
	default:
		return utils.NewOpenAIChatClient(config.APIKey, config.Model)
	}
}

func provideDestinationSource() knowledge.DestinationSource {
	return knowledge.NewStaticSource()
}

func provideSuggestionService(source knowledge.DestinationSource) services.SuggestionServiceInterface {
	return services.NewSuggestionService(source, time.Now().UnixNano())
}

func providePlannerService(client utils.ChatClientInterface, suggestions services.SuggestionServiceInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(client, suggestions)
}

func provideSpendingService(client utils.ChatClientInterface) services.SpendingServiceInterface {
	return services.NewSpendingService(client)
}

func getChatConfig() ChatConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	}

	return ChatConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
