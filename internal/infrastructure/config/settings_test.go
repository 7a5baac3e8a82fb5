package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockConfig map[string]string

func (m mockConfig) Get(key string) string { return m[key] }
func (m mockConfig) GetWithDefault(key, defaultValue string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return defaultValue
}
func (m mockConfig) GetInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(m[key]); err == nil {
		return v
	}
	return defaultValue
}
func (m mockConfig) GetBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(m[key]); err == nil {
		return v
	}
	return defaultValue
}

func TestLoad_Defaults(t *testing.T) {
	s := Load(mockConfig{})

	assert.Equal(t, ProviderOpenRouter, s.Provider())
	assert.Equal(t, DefaultOpenRouterModel, s.OpenRouterModel)
	assert.Equal(t, DefaultOpenRouterBaseURL, s.OpenRouterBaseURL)
	assert.Equal(t, DefaultOllamaModel, s.OllamaModel)
	assert.Equal(t, DefaultOllamaBaseURL, s.OllamaBaseURL)
	assert.Equal(t, 7, s.MaxAgentIterations)
	assert.Equal(t, DefaultHTTPAddr, s.HTTPAddr)
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.LogHTTP)
	assert.Empty(t, s.OpenRouterAPIKey)
	assert.Empty(t, s.TavilyAPIKey)
}

func TestLoad_Overrides(t *testing.T) {
	s := Load(mockConfig{
		"LLM_PROVIDER":         "ollama",
		"OLLAMA_MODEL_NAME":    "qwen2:7b",
		"OLLAMA_BASE_URL":      "http://localhost:11434",
		"TAVILY_API_KEY":       "tvly-key",
		"MAX_AGENT_ITERATIONS": "3",
		"LOG_HTTP":             "true",
	})

	assert.Equal(t, ProviderOllama, s.Provider())
	assert.Equal(t, "qwen2:7b", s.ActiveModel())
	assert.Equal(t, "http://localhost:11434", s.OllamaBaseURL)
	assert.Equal(t, "tvly-key", s.TavilyAPIKey)
	assert.Equal(t, 3, s.MaxAgentIterations)
	assert.True(t, s.LogHTTP)
}

func TestSettings_ProviderNormalisation(t *testing.T) {
	tests := map[string]string{
		`"OpenRouter"`: ProviderOpenRouter,
		`'ollama'`:     ProviderOllama,
		" OLLAMA ":     ProviderOllama,
		"anthropic":    "anthropic",
	}
	for raw, want := range tests {
		assert.Equal(t, want, Settings{LLMProvider: raw}.Provider(), raw)
	}
}

func TestSettings_ActiveModel(t *testing.T) {
	s := Settings{OpenRouterModel: "or-model", OllamaModel: "ol-model"}

	s.LLMProvider = "openrouter"
	assert.Equal(t, "or-model", s.ActiveModel())

	s.LLMProvider = "ollama"
	assert.Equal(t, "ol-model", s.ActiveModel())

	s.LLMProvider = "unknown"
	assert.Equal(t, "", s.ActiveModel())
}
