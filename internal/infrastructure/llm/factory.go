// Package llm selects and builds the completion client for the configured
// provider.
package llm

import (
	"errors"
	"fmt"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/infrastructure/config"
	"gaia-pathfinder/internal/infrastructure/llm/ollama"
	"gaia-pathfinder/internal/infrastructure/llm/openrouter"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported LLM provider")
	ErrMissingAPIKey       = errors.New("OPENROUTER_API_KEY not found in environment variables")
)

func New(settings config.Settings, logger output.LoggerPort) (output.LLMPort, error) {
	provider := settings.Provider()

	switch provider {
	case config.ProviderOpenRouter:
		if settings.OpenRouterAPIKey == "" {
			return nil, ErrMissingAPIKey
		}
		cfg := openrouter.DefaultConfig(settings.OpenRouterAPIKey, settings.OpenRouterModel)
		if settings.OpenRouterBaseURL != "" {
			cfg.BaseURL = settings.OpenRouterBaseURL
		}
		cfg.Logger = logger
		cfg.LogHTTP = settings.LogHTTP

		logger.Info("Using OpenRouter", "model", settings.OpenRouterModel, "baseURL", cfg.BaseURL)
		return openrouter.NewOpenRouterAdapter(cfg), nil

	case config.ProviderOllama:
		cfg := ollama.DefaultConfig(settings.OllamaModel)
		if settings.OllamaBaseURL != "" {
			cfg.ServerURL = settings.OllamaBaseURL
		}
		cfg.Logger = logger

		logger.Info("Using Ollama", "model", settings.OllamaModel, "serverURL", cfg.ServerURL)
		client, err := ollama.NewOllamaAdapter(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil

	default:
		return nil, fmt.Errorf("%w: %s. Choose 'openrouter' or 'ollama'", ErrUnsupportedProvider, provider)
	}
}
