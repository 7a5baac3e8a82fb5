package ollama

import (
	"context"
	"fmt"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"

	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"
)

const DefaultServerURL = "http://host.docker.internal:11434"

var _ output.LLMPort = (*OllamaAdapter)(nil)

type OllamaAdapter struct {
	model  llms.Model
	name   string
	logger output.LoggerPort
}

type Config struct {
	Model     string
	ServerURL string
	Logger    output.LoggerPort
}

func DefaultConfig(model string) Config {
	return Config{
		Model:     model,
		ServerURL: DefaultServerURL,
	}
}

// NewOllamaAdapter builds a client for a local Ollama server. No request is
// made until the first Chat call.
func NewOllamaAdapter(cfg Config) (*OllamaAdapter, error) {
	serverURL := cfg.ServerURL
	if serverURL == "" {
		serverURL = DefaultServerURL
	}

	client, err := lcollama.New(
		lcollama.WithModel(cfg.Model),
		lcollama.WithServerURL(serverURL),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	return NewWithModel(client, cfg.Model, cfg.Logger), nil
}

func NewWithModel(model llms.Model, name string, logger output.LoggerPort) *OllamaAdapter {
	return &OllamaAdapter{
		model:  model,
		name:   name,
		logger: logger,
	}
}

func (a *OllamaAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	if a.logger != nil {
		a.logger.Debug("Creating chat completion",
			"model", a.name,
			"messagesCount", len(req.Messages),
		)
	}

	var opts []llms.CallOption
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(float64(req.Temperature)))
	}

	resp, err := a.model.GenerateContent(ctx, convertMessages(req.Messages), opts...)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return nil, fmt.Errorf("no choices in response")
	}

	return &output.ChatResponse{
		Message: entity.AssistantMessage(resp.Choices[0].Content),
	}, nil
}

func convertMessages(messages []entity.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		result = append(result, llms.TextParts(convertRole(msg.Role), msg.Content))
	}
	return result
}

func convertRole(role entity.MessageRole) llms.ChatMessageType {
	switch role {
	case entity.RoleSystem:
		return llms.ChatMessageTypeSystem
	case entity.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
