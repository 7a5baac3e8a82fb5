package input

import (
	"context"

	"gaia-pathfinder/internal/domain/entity"
)

type AgentRunner interface {
	// Invoke runs the agent once for question and checkpoints the terminal
	// state under sessionID.
	Invoke(ctx context.Context, sessionID, question string) (*entity.AgentState, error)
	// Release drops the checkpoint kept for sessionID.
	Release(sessionID string)
}
