package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/etymquest/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with request
// logging. A nil eventRepo logs to slog only.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.ProviderConfig)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.ProviderConfig)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.ProviderConfig)
	case ProviderOpenRouter:
		pc := cfg.ProviderConfig
		if pc.BaseURL == "" {
			pc.BaseURL = defaultOpenRouterBaseURL
		}
		base, err = NewOpenAIProvider(pc)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, cfg.Provider, eventRepo, logger), nil
}
