// Package checkpoint keeps run states in process memory, keyed by session id.
package checkpoint

import (
	"sync"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"
)

var _ output.Checkpointer = (*MemoryCheckpointer)(nil)

type MemoryCheckpointer struct {
	mu     sync.RWMutex
	states map[string]*entity.AgentState
}

func NewMemoryCheckpointer() *MemoryCheckpointer {
	return &MemoryCheckpointer{
		states: make(map[string]*entity.AgentState),
	}
}

// Put stores a snapshot of state; later changes to state are not visible.
func (c *MemoryCheckpointer) Put(sessionID string, state *entity.AgentState) {
	snapshot := state.Clone()

	c.mu.Lock()
	c.states[sessionID] = snapshot
	c.mu.Unlock()
}

func (c *MemoryCheckpointer) Get(sessionID string) (*entity.AgentState, bool) {
	c.mu.RLock()
	state, ok := c.states[sessionID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return state.Clone(), true
}

func (c *MemoryCheckpointer) Delete(sessionID string) {
	c.mu.Lock()
	delete(c.states, sessionID)
	c.mu.Unlock()
}

func (c *MemoryCheckpointer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.states)
}
