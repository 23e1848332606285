package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by NewProvider.
const (
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string

	ProviderConfig

	// MaxTokens and Temperature are the generation defaults for requests
	// that leave them unset.
	MaxTokens   int
	Temperature float64

	// Timeout is the maximum duration for a single LLM request. Default: 30s.
	Timeout time.Duration
}

// ProviderConfig holds the settings shared by every hosted provider.
type ProviderConfig struct {
	APIKey  string
	Model   string // Empty selects the provider default.
	BaseURL string // Optional endpoint override.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:    ProviderGemini,
		MaxTokens:   1024,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

// apiKeyEnv lists the conventional API key variable for each provider.
var apiKeyEnv = map[string]string{
	ProviderGemini:     "GEMINI_API_KEY",
	ProviderAnthropic:  "ANTHROPIC_API_KEY",
	ProviderOpenAI:     "OPENAI_API_KEY",
	ProviderOpenRouter: "OPENROUTER_API_KEY",
}

// APIKeyEnv returns the conventional API key variable for provider.
func APIKeyEnv(provider string) string {
	return apiKeyEnv[provider]
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, p := range []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter} {
		if k := os.Getenv(apiKeyEnv[p]); k != "" {
			cfg.Provider = p
			cfg.APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("%s (or llm.api_key) is required for the %s provider", apiKeyEnv[c.Provider], c.Provider)
		}
	case ProviderMock:
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max tokens must not be negative, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature must be within [0, 1], got %g", c.Temperature)
	}
	return nil
}

// Apply fills request fields left unset from the configured defaults.
func (c Config) Apply(req Request) Request {
	if req.MaxTokens == 0 {
		req.MaxTokens = c.MaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = c.Temperature
	}
	return req
}
