package ollama

import (
	"context"
	"errors"
	"testing"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type mockModel struct {
	messages []llms.MessageContent
	opts     llms.CallOptions
	resp     *llms.ContentResponse
	err      error
}

func (m *mockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, opt := range options {
		opt(&m.opts)
	}
	return m.resp, m.err
}

func (m *mockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestOllamaAdapter_Chat(t *testing.T) {
	model := &mockModel{
		resp: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{{Content: "4\n\nReasoning: 2+2=4"}},
		},
	}
	adapter := NewWithModel(model, "llama3:8b-instruct", nil)

	resp, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{
			entity.SystemMessage("system"),
			entity.UserMessage("What is 2+2?"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAssistant, resp.Message.Role)
	assert.Equal(t, "4\n\nReasoning: 2+2=4", resp.Message.Content)
	require.Len(t, model.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
	assert.Equal(t, llms.TextContent{Text: "What is 2+2?"}, model.messages[1].Parts[0])
	assert.Zero(t, model.opts.Temperature)
}

func TestOllamaAdapter_ChatTemperature(t *testing.T) {
	model := &mockModel{
		resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "ok"}}},
	}
	adapter := NewWithModel(model, "m", nil)

	_, err := adapter.Chat(context.Background(), output.ChatRequest{Temperature: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, model.opts.Temperature, 1e-6)
}

func TestOllamaAdapter_ChatError(t *testing.T) {
	model := &mockModel{err: errors.New("connection refused")}
	adapter := NewWithModel(model, "m", nil)

	_, err := adapter.Chat(context.Background(), output.ChatRequest{})
	assert.EqualError(t, err, "chat completion failed: connection refused")
}

func TestOllamaAdapter_ChatNoChoices(t *testing.T) {
	model := &mockModel{resp: &llms.ContentResponse{}}
	adapter := NewWithModel(model, "m", nil)

	_, err := adapter.Chat(context.Background(), output.ChatRequest{})
	assert.EqualError(t, err, "no choices in response")
}

func TestConvertRole(t *testing.T) {
	assert.Equal(t, llms.ChatMessageTypeSystem, convertRole(entity.RoleSystem))
	assert.Equal(t, llms.ChatMessageTypeHuman, convertRole(entity.RoleUser))
	assert.Equal(t, llms.ChatMessageTypeAI, convertRole(entity.RoleAssistant))
}

func TestNewOllamaAdapter_DefaultServerURL(t *testing.T) {
	adapter, err := NewOllamaAdapter(Config{Model: "llama3:8b-instruct"})
	require.NoError(t, err)
	assert.Equal(t, "llama3:8b-instruct", adapter.name)
}
