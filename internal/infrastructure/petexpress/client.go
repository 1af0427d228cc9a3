package petexpress

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pawpick/backend/internal/domain"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client scrapes the Pet Express storefront. It is the only component that
// talks to the catalog; every transport or parse failure is folded into
// domain.ErrUpstreamUnavailable so callers have a single failure mode.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new storefront client. requestsPerMinute bounds the
// outbound scrape rate; the storefront is a shared resource.
func NewClient(baseURL string, timeout time.Duration, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// fetch executes a single rate-limited GET and returns the response.
// No retries: a failed catalog request aborts the caller's computation.
func (c *Client) fetch(ctx context.Context, reqURL string) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	if c.debug {
		log.Printf("[CATALOG] GET %s", reqURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	return resp, nil
}

// Search queries the storefront search page and returns all matching
// products in catalog order. An empty result is not an error.
func (c *Client) Search(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	params := url.Values{}
	params.Add("q", query)
	params.Add("type", "product")
	params.Add("options[prefix]", "last")
	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	resp, err := c.fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[CATALOG] Search %q failed with status %d", query, resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	items, err := parseProductCards(resp.Body, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	if c.debug {
		log.Printf("[CATALOG] Search %q returned %d items", query, len(items))
	}
	return items, nil
}

// Products fetches a collection page, optionally filtered by category handle.
func (c *Client) Products(ctx context.Context, category string, page int) ([]domain.CatalogItem, error) {
	if page < 1 {
		page = 1
	}
	collection := "all"
	if category != "" {
		collection = url.PathEscape(category)
	}
	reqURL := fmt.Sprintf("%s/collections/%s?page=%d", c.baseURL, collection, page)

	resp, err := c.fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	items, err := parseProductCards(resp.Body, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return items, nil
}

// ProductDetails fetches and parses a single product page.
func (c *Client) ProductDetails(ctx context.Context, productID string) (*domain.ProductDetails, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, domain.ErrInvalidRequest
	}
	reqURL := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(productID))

	resp, err := c.fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	details, err := parseProductDetails(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	details.ProductID = productID
	details.URL = reqURL
	return details, nil
}

// Categories fetches the storefront home page and extracts the navigation
// category tree.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	resp, err := c.fetch(ctx, c.baseURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	categories, err := parseCategories(resp.Body, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return categories, nil
}
