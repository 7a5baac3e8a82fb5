package tool

import (
	"context"
	"errors"
	"testing"

	"gaia-pathfinder/internal/domain/entity"
	"gaia-pathfinder/internal/infrastructure/evaluator/starlarkeval"
	"gaia-pathfinder/internal/infrastructure/logger"
	"gaia-pathfinder/internal/infrastructure/search/offline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSearch struct {
	results []entity.SearchResult
	err     error
	query   string
}

func (m *mockSearch) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	m.query = query
	return m.results, m.err
}

func TestWebSearchTool_JSONResults(t *testing.T) {
	search := &mockSearch{results: []entity.SearchResult{
		{Title: "Paris", URL: "https://en.wikipedia.org/wiki/Paris", Content: "Capital of France."},
	}}
	tool := NewWebSearchTool(search, logger.NewNop())

	out, err := tool.Execute(context.Background(), `{"query":"capital of France"}`)
	require.NoError(t, err)

	assert.Equal(t, "capital of France", search.query)
	assert.JSONEq(t, `[{"url":"https://en.wikipedia.org/wiki/Paris","content":"Capital of France."}]`, out)
}

func TestWebSearchTool_Offline(t *testing.T) {
	tool := NewWebSearchTool(offline.NewOfflineAdapter(logger.NewNop()), logger.NewNop())

	out, err := tool.Execute(context.Background(), `{"query":"What is the capital of France?"}`)
	require.NoError(t, err)
	assert.Equal(t, "The capital of France is Paris.", out)
}

func TestWebSearchTool_SearchError(t *testing.T) {
	tool := NewWebSearchTool(&mockSearch{err: errors.New("tavily http 500")}, logger.NewNop())

	out, err := tool.Execute(context.Background(), `{"query":"q"}`)
	require.NoError(t, err)
	assert.Equal(t, "Error during web search: tavily http 500", out)
}

func TestWebSearchTool_InvalidArgs(t *testing.T) {
	tool := NewWebSearchTool(&mockSearch{}, logger.NewNop())

	_, err := tool.Execute(context.Background(), `not json`)
	assert.Error(t, err)

	_, err = tool.Execute(context.Background(), `{"query":"  "}`)
	assert.EqualError(t, err, "query is required")
}

func TestCodeExecutionTool_Execute(t *testing.T) {
	tool := NewCodeExecutionTool(starlarkeval.NewEvaluator(starlarkeval.DefaultConfig()), logger.NewNop())

	out, err := tool.Execute(context.Background(), `{"code":"print('hi')"}`)
	require.NoError(t, err)
	assert.Equal(t, "hi", out)

	out, err = tool.Execute(context.Background(), `{"code":"3 * 7"}`)
	require.NoError(t, err)
	assert.Equal(t, "Execution Result: 21", out)

	out, err = tool.Execute(context.Background(), `{"code":"1 / 0"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "Error executing code:")
}

func TestTools_Metadata(t *testing.T) {
	search := NewWebSearchTool(&mockSearch{}, logger.NewNop())
	code := NewCodeExecutionTool(starlarkeval.NewEvaluator(starlarkeval.DefaultConfig()), logger.NewNop())

	assert.Equal(t, entity.ToolWebSearch, search.Name())
	assert.Equal(t, entity.ToolCodeExecution, code.Name())
	assert.Equal(t, []string{"query"}, search.Parameters()["required"])
	assert.Equal(t, []string{"code"}, code.Parameters()["required"])
}
