package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"
)

var (
	_ output.ToolPort = (*WebSearchTool)(nil)
	_ output.ToolPort = (*CodeExecutionTool)(nil)
)

type WebSearchTool struct {
	search output.SearchPort
	logger output.LoggerPort
}

func NewWebSearchTool(search output.SearchPort, logger output.LoggerPort) *WebSearchTool {
	return &WebSearchTool{search: search, logger: logger}
}

func (t *WebSearchTool) Name() entity.ToolName { return entity.ToolWebSearch }
func (t *WebSearchTool) Description() string {
	return "Useful tool to search the web for information based on a query."
}
func (t *WebSearchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The search query string to find information on the web.",
			},
		},
		"required": []string{"query"},
	}
}

type searchHit struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Execute returns the hits as a JSON array of {url, content}. Hits without a
// URL come from the offline backend and are returned as plain text.
func (t *WebSearchTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if strings.TrimSpace(input.Query) == "" {
		return "", fmt.Errorf("query is required")
	}

	t.logger.Info("Executing web_search", "query", input.Query)

	results, err := t.search.Search(ctx, input.Query)
	if err != nil {
		t.logger.Error("Error during web search", "error", err)
		return fmt.Sprintf("Error during web search: %v", err), nil
	}

	if len(results) > 0 && results[0].URL == "" {
		texts := make([]string, 0, len(results))
		for _, r := range results {
			texts = append(texts, r.Content)
		}
		return strings.Join(texts, "\n"), nil
	}

	hits := make([]searchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, searchHit{URL: r.URL, Content: r.Content})
	}
	data, err := json.Marshal(hits)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type CodeExecutionTool struct {
	evaluator output.EvaluatorPort
	logger    output.LoggerPort
}

func NewCodeExecutionTool(evaluator output.EvaluatorPort, logger output.LoggerPort) *CodeExecutionTool {
	return &CodeExecutionTool{evaluator: evaluator, logger: logger}
}

func (t *CodeExecutionTool) Name() entity.ToolName { return entity.ToolCodeExecution }
func (t *CodeExecutionTool) Description() string {
	return "Evaluates a short Starlark (Python-like) snippet, useful for calculations or simple data manipulations."
}
func (t *CodeExecutionTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"code": map[string]interface{}{
				"type":        "string",
				"description": "A snippet of code to evaluate. Use print() to capture results of statements.",
			},
		},
		"required": []string{"code"},
	}
}

func (t *CodeExecutionTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	t.logger.Info("Executing code_execution")

	result, err := t.evaluator.Evaluate(ctx, input.Code)
	if err != nil {
		t.logger.Error("Error executing code", "error", err)
		return fmt.Sprintf("Error executing code: %v.", err), nil
	}
	return result, nil
}
