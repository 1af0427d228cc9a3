package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pawpick/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// Relevance scores for the plain search path. The full query matching the
// title exactly beats a substring match; non-matching items are kept with
// score zero.
const (
	relevanceExact   = 10
	relevancePartial = 5
	relevanceNone    = 0
)

// SearchService handles catalog search with relevance ranking, pagination,
// and short-lived result caching.
type SearchService struct {
	catalog  domain.CatalogClient
	cache    domain.CacheRepository
	cacheTTL time.Duration
}

// NewSearchService creates a new search service with dependencies
func NewSearchService(catalog domain.CatalogClient, cache domain.CacheRepository, cacheTTL time.Duration) *SearchService {
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}
	return &SearchService{
		catalog:  catalog,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Search queries the catalog, scores each item's relevance against the raw
// query, sorts descending (stable, so catalog order breaks ties), and
// returns the requested page.
func (s *SearchService) Search(ctx context.Context, query string, page, limit int) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", domain.ErrInvalidRequest)
	}

	items, err := s.catalogSearch(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, domain.SearchResult{
			CatalogItem:    item,
			SearchQuery:    query,
			RelevanceScore: relevanceScore(item.Title, query),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return paginateResults(results, page, limit), nil
}

// catalogSearch returns search results from cache when fresh, otherwise hits
// the storefront and caches the outcome.
func (s *SearchService) catalogSearch(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	cacheKey := "search:" + normalizeQuery(query)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if items, ok := cached.([]domain.CatalogItem); ok {
			return items, nil
		}
	}

	items, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, items, s.cacheTTL); err != nil {
		log.Printf("[SEARCH] Failed to cache results for %q: %v", query, err)
	}

	return items, nil
}

// Products lists catalog items for a collection page.
func (s *SearchService) Products(ctx context.Context, category string, page, limit int) ([]domain.CatalogItem, error) {
	items, err := s.catalog.Products(ctx, category, page)
	if err != nil {
		return nil, err
	}
	if len(items) > limit && limit > 0 {
		items = items[:limit]
	}
	return items, nil
}

// ProductDetails fetches the full record for one product.
func (s *SearchService) ProductDetails(ctx context.Context, productID string) (*domain.ProductDetails, error) {
	return s.catalog.ProductDetails(ctx, productID)
}

// Categories lists the storefront navigation categories.
func (s *SearchService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.catalog.Categories(ctx)
}

// relevanceScore measures textual match between the raw query and a product
// title. Exact case-insensitive match of the full query wins, a substring
// match counts less, and anything else scores zero but stays in the results.
func relevanceScore(title, query string) int {
	foldedTitle := strings.ToLower(strings.TrimSpace(title))
	foldedQuery := strings.ToLower(strings.TrimSpace(query))

	switch {
	case foldedTitle == foldedQuery:
		return relevanceExact
	case strings.Contains(foldedTitle, foldedQuery):
		return relevancePartial
	default:
		return relevanceNone
	}
}

// paginateResults slices a sorted result list into the requested page.
func paginateResults(results []domain.SearchResult, page, limit int) []domain.SearchResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	start := (page - 1) * limit
	if start >= len(results) {
		return []domain.SearchResult{}
	}
	end := start + limit
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

// normalizeQuery normalizes a query string for use as a cache key component.
func normalizeQuery(query string) string {
	result := strings.ToLower(query)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
