package output

import "gaia-pathfinder/internal/domain/entity"

// Checkpointer stores terminal run states keyed by session id.
type Checkpointer interface {
	Put(sessionID string, state *entity.AgentState)
	Get(sessionID string) (*entity.AgentState, bool)
	Delete(sessionID string)
}
