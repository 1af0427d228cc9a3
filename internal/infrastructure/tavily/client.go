package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pawpick/backend/internal/domain"
)

// Client calls the Tavily web-search API to gather review text. A client
// built without an API key reports unconfigured and callers fall back to
// empty review sets.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a new Tavily search client
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// Configured reports whether the client has an API key to work with.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
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

// Search runs a single web search and returns the result snippets. One
// attempt only: transient failures surface as ErrReviewSearchUnavailable and
// the caller degrades to an empty review set for that item.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]domain.ReviewSnippet, error) {
	if !c.Configured() {
		return nil, domain.ErrReviewSearchUnavailable
	}
	if maxResults <= 0 {
		maxResults = 3
	}

	payload, err := json.Marshal(searchRequest{
		APIKey:      c.apiKey,
		Query:       query,
		SearchDepth: "basic",
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReviewSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrReviewSearchUnavailable, resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReviewSearchUnavailable, err)
	}

	snippets := make([]domain.ReviewSnippet, 0, len(result.Results))
	seen := make(map[string]bool)
	for _, r := range result.Results {
		if r.Content == "" {
			continue
		}
		// Deduplicate by source URL
		if r.URL != "" && seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		snippets = append(snippets, domain.ReviewSnippet{
			Content: r.Content,
			Source:  r.URL,
			Query:   query,
		})
		if len(snippets) >= maxResults {
			break
		}
	}

	return snippets, nil
}
