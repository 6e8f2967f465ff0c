package config

// AIConfig holds everything needed to talk to the external chat-completion
// collaborator. It is built once at startup and passed into services; it is
// never mutated afterwards so tests can inject deterministic settings.
type AIConfig struct {
	APIKey     string `json:"-"` // Never serialize
	CustomerID string `json:"-"`
	BaseURL    string `json:"baseUrl"`
	Model      string `json:"model"`
	TimeoutMS  int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:     getEnvOrDefault("AI_API_KEY", ""),
		CustomerID: getEnvOrDefault("AI_CUSTOMER_ID", ""),
		BaseURL:    getEnvOrDefault("AI_BASE_URL", "https://oi-server.onrender.com/chat/completions"),
		Model:      getEnvOrDefault("AI_MODEL", "openrouter/anthropic/claude-sonnet-4"),
		TimeoutMS:  30000,
	}
}
