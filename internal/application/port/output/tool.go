package output

import (
	"context"

	"gaia-pathfinder/internal/domain/entity"
)

type ToolPort interface {
	Name() entity.ToolName
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, arguments string) (string, error)
}

type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	Definitions() []entity.ToolDefinition
}

type SearchPort interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

type EvaluatorPort interface {
	Evaluate(ctx context.Context, code string) (string, error)
}
