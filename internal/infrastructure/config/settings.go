// Package config resolves the process-wide settings from the environment.
package config

import (
	"strings"

	"gaia-pathfinder/internal/application/port/output"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

const (
	DefaultProvider           = ProviderOpenRouter
	DefaultOpenRouterModel    = "mistralai/mistral-7b-instruct-v0.2"
	DefaultOpenRouterBaseURL  = "https://openrouter.ai/api/v1"
	DefaultOllamaModel        = "llama3:8b-instruct"
	DefaultOllamaBaseURL      = "http://host.docker.internal:11434"
	DefaultMaxAgentIterations = 7
	DefaultHTTPAddr           = ":8000"
	DefaultLogLevel           = "info"
)

// Settings is built once at start-up and passed by value.
type Settings struct {
	LLMProvider string

	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterBaseURL string

	OllamaModel   string
	OllamaBaseURL string

	TavilyAPIKey string

	MaxAgentIterations int

	HTTPAddr string
	LogLevel string
	LogHTTP  bool
}

func Load(env output.ConfigPort) Settings {
	return Settings{
		LLMProvider:        env.GetWithDefault("LLM_PROVIDER", DefaultProvider),
		OpenRouterAPIKey:   env.Get("OPENROUTER_API_KEY"),
		OpenRouterModel:    env.GetWithDefault("OPENROUTER_MODEL_NAME", DefaultOpenRouterModel),
		OpenRouterBaseURL:  env.GetWithDefault("OPENROUTER_BASE_URL", DefaultOpenRouterBaseURL),
		OllamaModel:        env.GetWithDefault("OLLAMA_MODEL_NAME", DefaultOllamaModel),
		OllamaBaseURL:      env.GetWithDefault("OLLAMA_BASE_URL", DefaultOllamaBaseURL),
		TavilyAPIKey:       env.Get("TAVILY_API_KEY"),
		MaxAgentIterations: env.GetInt("MAX_AGENT_ITERATIONS", DefaultMaxAgentIterations),
		HTTPAddr:           env.GetWithDefault("HTTP_ADDR", DefaultHTTPAddr),
		LogLevel:           env.GetWithDefault("LOG_LEVEL", DefaultLogLevel),
		LogHTTP:            env.GetBool("LOG_HTTP", false),
	}
}

// Provider returns LLMProvider lower-cased with surrounding quotes removed,
// so values copied from shell-quoted .env files still match.
func (s Settings) Provider() string {
	p := strings.ToLower(strings.TrimSpace(s.LLMProvider))
	return strings.Trim(p, `"'`)
}

// ActiveModel is the model name of the selected provider, or "" when the
// provider is unknown.
func (s Settings) ActiveModel() string {
	switch s.Provider() {
	case ProviderOpenRouter:
		return s.OpenRouterModel
	case ProviderOllama:
		return s.OllamaModel
	default:
		return ""
	}
}
