package output

import (
	"context"

	"gaia-pathfinder/internal/domain/entity"
)

type LLMPort interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// ChatRequest carries a zero Temperature when the provider default applies.
type ChatRequest struct {
	Messages    []entity.Message
	Temperature float32
}

type ChatResponse struct {
	Message entity.Message
}
