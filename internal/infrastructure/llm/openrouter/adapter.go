package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"

	"github.com/sashabaranov/go-openai"
)

const DefaultBaseURL = "https://openrouter.ai/api/v1"

var _ output.LLMPort = (*OpenRouterAdapter)(nil)

type OpenRouterAdapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// Logger, when set, receives every completion call. With LogHTTP it
	// also receives the raw HTTP exchange.
	Logger  output.LoggerPort
	LogHTTP bool
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: DefaultBaseURL,
	}
}

type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var bodyBytes []byte
	if req.Body != nil {
		bodyBytes, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	var requestData map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &requestData)
	}

	t.logger.Debug("HTTP Request",
		"method", req.Method,
		"url", req.URL.String(),
		"body", requestData,
	)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Warn("HTTP Request failed", "url", req.URL.String(), "error", err)
		return nil, err
	}

	t.logger.Debug("HTTP Response",
		"status", resp.Status,
		"statusCode", resp.StatusCode,
	)
	return resp, nil
}

func NewOpenRouterAdapter(cfg Config) *OpenRouterAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if cfg.Logger != nil && cfg.LogHTTP {
		config.HTTPClient = &http.Client{
			Transport: &loggingTransport{
				base:   http.DefaultTransport,
				logger: cfg.Logger,
			},
		}
	}

	return &OpenRouterAdapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

func (a *OpenRouterAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	if a.logger != nil {
		a.logger.Debug("Creating chat completion",
			"model", a.model,
			"messagesCount", len(req.Messages),
			"temperature", req.Temperature,
		)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertMessages(req.Messages),
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &output.ChatResponse{
		Message: convertResponseMessage(resp.Choices[0].Message),
	}, nil
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, openai.ChatCompletionMessage{
			Role:    convertRole(msg.Role),
			Content: msg.Content,
		})
	}
	return result
}

func convertRole(role entity.MessageRole) string {
	switch role {
	case entity.RoleSystem:
		return openai.ChatMessageRoleSystem
	case entity.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}

func convertResponseMessage(msg openai.ChatCompletionMessage) entity.Message {
	content := msg.Content
	if content == "" && len(msg.MultiContent) > 0 {
		for _, part := range msg.MultiContent {
			if part.Type == openai.ChatMessagePartTypeText {
				content += part.Text
			}
		}
	}
	return entity.AssistantMessage(content)
}
