// Package offline answers searches without network access. It stands in for
// the web search backend when no Tavily key is configured.
package offline

import (
	"context"
	"fmt"
	"strings"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"
)

var _ output.SearchPort = (*OfflineAdapter)(nil)

type OfflineAdapter struct {
	logger output.LoggerPort
}

func NewOfflineAdapter(logger output.LoggerPort) *OfflineAdapter {
	return &OfflineAdapter{logger: logger}
}

// Search returns a single canned result with an empty URL.
func (o *OfflineAdapter) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	o.logger.Warn("TAVILY_API_KEY not set. Using mocked search results.", "query", query)

	content := fmt.Sprintf("Mocked search results for: %s. (TAVILY_API_KEY not set)", query)
	if strings.Contains(strings.ToLower(query), "capital of france") {
		content = "The capital of France is Paris."
	}
	return []entity.SearchResult{{Content: content}}, nil
}
