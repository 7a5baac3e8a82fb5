package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"
	"gaia-pathfinder/internal/infrastructure/logger"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestConvertResponseMessage_WithContent(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role:    "assistant",
		Content: "Hello, world!",
	}

	result := convertResponseMessage(msg)

	assert.Equal(t, entity.RoleAssistant, result.Role)
	assert.Equal(t, "Hello, world!", result.Content)
}

func TestConvertResponseMessage_MultiContent(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role: "assistant",
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: "Hello, "},
			{Type: openai.ChatMessagePartTypeImageURL},
			{Type: openai.ChatMessagePartTypeText, Text: "world"},
		},
	}

	assert.Equal(t, "Hello, world", convertResponseMessage(msg).Content)
}

func TestConvertMessages_Roles(t *testing.T) {
	messages := []entity.Message{
		entity.SystemMessage("be brief"),
		entity.UserMessage("Hello"),
		entity.AssistantMessage("Hi there"),
	}

	result := convertMessages(messages)

	require.Len(t, result, 3)
	assert.Equal(t, openai.ChatMessageRoleSystem, result[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, result[1].Role)
	assert.Equal(t, "Hello", result[1].Content)
	assert.Equal(t, openai.ChatMessageRoleAssistant, result[2].Role)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("key", "model")
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "model", cfg.Model)
}

func TestOpenRouterAdapter_Chat(t *testing.T) {
	var received openai.ChatCompletionRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:     "gen-1",
			Object: "chat.completion",
			Model:  received.Model,
			Choices: []openai.ChatCompletionChoice{{
				Index:        0,
				Message:      openai.ChatCompletionMessage{Role: "assistant", Content: "The capital of France is Paris."},
				FinishReason: openai.FinishReasonStop,
			}},
		})
	}))
	defer server.Close()

	cfg := DefaultConfig("test-key", "mistralai/mistral-7b-instruct-v0.2")
	cfg.BaseURL = server.URL
	cfg.Logger = logger.NewFromZap(zaptest.NewLogger(t))
	cfg.LogHTTP = true
	adapter := NewOpenRouterAdapter(cfg)

	resp, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{
			entity.SystemMessage("system"),
			entity.UserMessage("What is the capital of France?"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "The capital of France is Paris.", resp.Message.Content)
	assert.Equal(t, entity.RoleAssistant, resp.Message.Role)
	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "mistralai/mistral-7b-instruct-v0.2", received.Model)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "What is the capital of France?", received.Messages[1].Content)
}

func TestOpenRouterAdapter_ChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"gen-2","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	cfg := DefaultConfig("k", "m")
	cfg.BaseURL = server.URL

	_, err := NewOpenRouterAdapter(cfg).Chat(context.Background(), output.ChatRequest{})
	assert.EqualError(t, err, "no choices in response")
}

func TestOpenRouterAdapter_ChatAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"No auth credentials found","code":401}}`))
	}))
	defer server.Close()

	cfg := DefaultConfig("bad", "m")
	cfg.BaseURL = server.URL

	_, err := NewOpenRouterAdapter(cfg).Chat(context.Background(), output.ChatRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion failed")
}
