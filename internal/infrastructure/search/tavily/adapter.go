package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"
)

const (
	DefaultEndpoint   = "https://api.tavily.com/search"
	DefaultDepth      = "basic"
	DefaultMaxResults = 3
)

var _ output.SearchPort = (*TavilyAdapter)(nil)

var ErrMissingAPIKey = errors.New("tavily: API key is missing")

type Config struct {
	APIKey     string
	Endpoint   string
	Depth      string
	MaxResults int
	Timeout    time.Duration
	// Retries bounds how many times a 429 response is retried.
	Retries    int
	RetryDelay time.Duration
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:     apiKey,
		Endpoint:   DefaultEndpoint,
		Depth:      DefaultDepth,
		MaxResults: DefaultMaxResults,
		Timeout:    10 * time.Second,
		Retries:    3,
		RetryDelay: time.Second,
	}
}

type TavilyAdapter struct {
	cfg    Config
	client *http.Client
	logger output.LoggerPort
}

func NewTavilyAdapter(cfg Config, logger output.LoggerPort) *TavilyAdapter {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Depth == "" {
		cfg.Depth = DefaultDepth
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	return &TavilyAdapter{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type searchRequest struct {
	Query       string `json:"query"`
	APIKey      string `json:"api_key"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (t *TavilyAdapter) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if strings.TrimSpace(t.cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	payload, err := json.Marshal(searchRequest{
		Query:       query,
		APIKey:      t.cfg.APIKey,
		SearchDepth: t.cfg.Depth,
		MaxResults:  t.cfg.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	resp, err := t.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]entity.SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, entity.SearchResult{Title: r.Title, URL: r.URL, Content: r.Content})
		if len(results) >= t.cfg.MaxResults {
			break
		}
	}

	t.logger.Info("Web search successful", "query", query, "results", len(results))
	return results, nil
}

func (t *TavilyAdapter) post(ctx context.Context, payload []byte) (*http.Response, error) {
	delay := t.cfg.RetryDelay
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.Endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)

		resp, err := t.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("tavily request: %w", err)
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= t.cfg.Retries {
			return resp, nil
		}
		resp.Body.Close()

		t.logger.Warn("Tavily rate limited, retrying", "attempt", attempt+1, "delay", delay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
}
