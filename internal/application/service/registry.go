package service

import (
	"sort"
	"sync"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"
)

var _ output.ToolRegistry = (*ToolRegistryImpl)(nil)

type ToolRegistryImpl struct {
	mu    sync.RWMutex
	tools map[entity.ToolName]output.ToolPort
}

func NewToolRegistry() *ToolRegistryImpl {
	return &ToolRegistryImpl{
		tools: make(map[entity.ToolName]output.ToolPort),
	}
}

// Register adds tool, replacing any tool already registered under its name.
func (r *ToolRegistryImpl) Register(tool output.ToolPort) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

func (r *ToolRegistryImpl) Get(name entity.ToolName) (output.ToolPort, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// All returns the registered tools ordered by name.
func (r *ToolRegistryImpl) All() []output.ToolPort {
	r.mu.RLock()
	result := make([]output.ToolPort, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, tool)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

func (r *ToolRegistryImpl) Definitions() []entity.ToolDefinition {
	tools := r.All()
	result := make([]entity.ToolDefinition, 0, len(tools))
	for _, tool := range tools {
		result = append(result, entity.ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return result
}
